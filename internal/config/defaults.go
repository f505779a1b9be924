package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration. It matches the
// embedded defaults/shooter.yaml and is the fallback when that fails to parse.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        50,
			Height:       40,
			Speed:        5,
			BottomMargin: 10,
		},
		Projectile: ProjectileConfig{
			Width:  4,
			Height: 10,
			Speed:  7,
		},
		Enemies: EnemyConfig{
			Count:     8,
			Width:     40,
			Height:    30,
			Speed:     3,
			SpawnMinY: -100,
			SpawnMaxY: -40,
		},
		PowerUps: PowerUpConfig{
			Enabled:            true,
			Width:              20,
			Height:             20,
			Speed:              2,
			DropChance:         20,
			Duration:           180, // 3 seconds at 60 ticks/s
			PermanentThreshold: 5,
			TripleThreshold:    10,
		},
		Stars: StarConfig{
			Count:    50,
			MinSpeed: 1,
			MaxSpeed: 2,
			MinSize:  1,
			MaxSize:  2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
