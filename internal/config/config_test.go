package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Errorf("embedded YAML and DefaultShooterConfig disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultShooterConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("enemies:\n  count: 3\npowerups:\n  drop_chance: 100\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Enemies.Count != 3 {
		t.Errorf("Enemies.Count = %d, expected 3", cfg.Enemies.Count)
	}
	if cfg.PowerUps.DropChance != 100 {
		t.Errorf("PowerUps.DropChance = %d, expected 100", cfg.PowerUps.DropChance)
	}
	if cfg.Enemies.Width != 40 || cfg.Playfield.Width != 800 {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("enemies: [1, 2")); err == nil {
		t.Error("expected a parse error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
		field  string
	}{
		{"zero playfield width", func(c *ShooterConfig) { c.Playfield.Width = 0 }, "playfield.width"},
		{"enemy wider than field", func(c *ShooterConfig) { c.Enemies.Width = 900 }, "enemies.width"},
		{"inverted spawn band", func(c *ShooterConfig) { c.Enemies.SpawnMinY = -20; c.Enemies.SpawnMaxY = -60 }, "enemies.spawn_min_y"},
		{"spawn band overlaps field", func(c *ShooterConfig) { c.Enemies.SpawnMaxY = -10 }, "enemies.spawn_max_y"},
		{"drop chance above 100", func(c *ShooterConfig) { c.PowerUps.DropChance = 120 }, "powerups.drop_chance"},
		{"zero duration", func(c *ShooterConfig) { c.PowerUps.Duration = 0 }, "powerups.duration"},
		{"ship taller than field", func(c *ShooterConfig) { c.Player.Height = 700 }, "player.bottom_margin"},
		{"bad star speed range", func(c *ShooterConfig) { c.Stars.MinSpeed = 3 }, "stars.min_speed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should match ErrInvalidConfig, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error should contain a *ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", verr.Field, tc.field)
			}
		})
	}
}

func TestValidateIgnoresDisabledPowerUps(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.PowerUps.Enabled = false
	cfg.PowerUps.Duration = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled power-ups should not be validated, got %v", err)
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter error: %v", err)
	}
	if cfg.Player.Speed != 9 {
		t.Errorf("Player.Speed = %d, expected 9", cfg.Player.Speed)
	}
}

func TestLoadShooterCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadShooter(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("enemies:\n  speed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadShooter(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config should fail validation, got %v", err)
	}
}

func TestLoadShooterFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestLoadShooterUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "shooter.yaml"), []byte("enemies:\n  count: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter error: %v", err)
	}
	if cfg.Enemies.Count != 4 {
		t.Errorf("user config should be picked up, Enemies.Count = %d", cfg.Enemies.Count)
	}
}

func TestPresets(t *testing.T) {
	cfg := DefaultShooterConfig()
	ApplyPreset(&cfg, PresetClassic)
	if cfg.PowerUps.Enabled {
		t.Error("classic preset should disable power-ups")
	}
	ApplyPreset(&cfg, PresetStandard)
	if !cfg.PowerUps.Enabled {
		t.Error("standard preset should enable power-ups")
	}

	if p, ok := ParsePreset("classic"); !ok || p != PresetClassic {
		t.Errorf("ParsePreset(classic) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.Enemies.Count = 12

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !reflect.DeepEqual(cfg, back) {
		t.Errorf("round trip changed the config:\nbefore: %+v\nafter:  %+v", cfg, back)
	}
}
