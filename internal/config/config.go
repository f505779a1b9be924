// Package config provides YAML-based configuration loading, presets and
// validation for the shooter.
package config

// ShooterConfig contains all tunable parameters of a shooter session.
// Sizes, positions and speeds are in logical playfield pixels (per tick for
// speeds); durations are in ticks.
type ShooterConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Stars      StarConfig       `yaml:"stars"`
}

// PlayfieldConfig defines the logical playfield size.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player's ship.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`
	BottomMargin int `yaml:"bottom_margin"` // Gap between ship bottom and playfield bottom
}

// ProjectileConfig defines the player's shots.
type ProjectileConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Upward speed
}

// EnemyConfig defines enemy ships and their spawn band above the playfield.
type EnemyConfig struct {
	Count     int `yaml:"count"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Speed     int `yaml:"speed"`       // Downward speed
	SpawnMinY int `yaml:"spawn_min_y"` // Inclusive
	SpawnMaxY int `yaml:"spawn_max_y"` // Inclusive
}

// PowerUpConfig defines power-up drops and the firing upgrades they grant.
type PowerUpConfig struct {
	Enabled            bool `yaml:"enabled"`
	Width              int  `yaml:"width"`
	Height             int  `yaml:"height"`
	Speed              int  `yaml:"speed"`               // Downward speed
	DropChance         int  `yaml:"drop_chance"`         // Percent per destroyed enemy, 0-100
	Duration           int  `yaml:"duration"`            // Ticks a timed upgrade lasts
	PermanentThreshold int  `yaml:"permanent_threshold"` // Stars that make double-shot permanent
	TripleThreshold    int  `yaml:"triple_threshold"`    // Bonus stars that grant triple-shot
}

// StarConfig defines the cosmetic background starfield.
type StarConfig struct {
	Count    int `yaml:"count"`
	MinSpeed int `yaml:"min_speed"`
	MaxSpeed int `yaml:"max_speed"`
	MinSize  int `yaml:"min_size"`
	MaxSize  int `yaml:"max_size"`
}

// Preset is a named configuration variant.
type Preset string

const (
	PresetStandard Preset = "standard" // Power-ups enabled
	PresetClassic  Preset = "classic"  // Original rules: single shot only
)

// ParsePreset maps a CLI string to a preset. Unknown names return "" and
// false; the empty string is accepted and means "no preset".
func ParsePreset(name string) (Preset, bool) {
	switch Preset(name) {
	case PresetStandard, PresetClassic:
		return Preset(name), true
	case "":
		return "", true
	default:
		return "", false
	}
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *ShooterConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.PowerUps.Enabled = false
	case PresetStandard:
		cfg.PowerUps.Enabled = true
	}
}
