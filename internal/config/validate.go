package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every ValidationError via errors.Is.
var ErrInvalidConfig = errors.New("invalid config")

// ValidationError describes one rejected configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidConfig) succeed.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks that the configuration describes a playable session.
// All violations are reported, joined with errors.Join.
func (c ShooterConfig) Validate() error {
	var errs []error
	check := func(ok bool, field, format string, args ...any) {
		if !ok {
			errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
		}
	}

	pf := c.Playfield
	check(pf.Width > 0, "playfield.width", "must be positive, got %d", pf.Width)
	check(pf.Height > 0, "playfield.height", "must be positive, got %d", pf.Height)

	p := c.Player
	check(p.Width > 0 && p.Height > 0, "player", "size must be positive, got %dx%d", p.Width, p.Height)
	check(p.Width <= pf.Width, "player.width", "%d does not fit a %d wide playfield", p.Width, pf.Width)
	check(p.Speed >= 0, "player.speed", "must not be negative, got %d", p.Speed)
	check(p.BottomMargin >= 0 && p.Height+p.BottomMargin <= pf.Height,
		"player.bottom_margin", "ship of height %d with margin %d does not fit a %d high playfield",
		p.Height, p.BottomMargin, pf.Height)

	pr := c.Projectile
	check(pr.Width > 0 && pr.Height > 0, "projectile", "size must be positive, got %dx%d", pr.Width, pr.Height)
	check(pr.Speed > 0, "projectile.speed", "must be positive, got %d", pr.Speed)

	e := c.Enemies
	check(e.Count >= 0, "enemies.count", "must not be negative, got %d", e.Count)
	check(e.Width > 0 && e.Height > 0, "enemies", "size must be positive, got %dx%d", e.Width, e.Height)
	check(e.Width <= pf.Width, "enemies.width", "%d does not fit a %d wide playfield", e.Width, pf.Width)
	check(e.Speed > 0, "enemies.speed", "must be positive, got %d", e.Speed)
	check(e.SpawnMinY <= e.SpawnMaxY, "enemies.spawn_min_y", "%d is above spawn_max_y %d", e.SpawnMinY, e.SpawnMaxY)
	check(e.SpawnMaxY+e.Height <= 0, "enemies.spawn_max_y",
		"enemies must spawn fully above the playfield, %d + height %d > 0", e.SpawnMaxY, e.Height)

	pu := c.PowerUps
	if pu.Enabled {
		check(pu.Width > 0 && pu.Height > 0, "powerups", "size must be positive, got %dx%d", pu.Width, pu.Height)
		check(pu.Speed > 0, "powerups.speed", "must be positive, got %d", pu.Speed)
		check(pu.DropChance >= 0 && pu.DropChance <= 100, "powerups.drop_chance", "must be within 0-100, got %d", pu.DropChance)
		check(pu.Duration > 0, "powerups.duration", "must be positive, got %d", pu.Duration)
		check(pu.PermanentThreshold > 0, "powerups.permanent_threshold", "must be positive, got %d", pu.PermanentThreshold)
		check(pu.TripleThreshold > 0, "powerups.triple_threshold", "must be positive, got %d", pu.TripleThreshold)
	}

	s := c.Stars
	check(s.Count >= 0, "stars.count", "must not be negative, got %d", s.Count)
	if s.Count > 0 {
		check(s.MinSpeed > 0 && s.MinSpeed <= s.MaxSpeed, "stars.min_speed",
			"speed range %d-%d is invalid", s.MinSpeed, s.MaxSpeed)
		check(s.MinSize > 0 && s.MinSize <= s.MaxSize, "stars.min_size",
			"size range %d-%d is invalid", s.MinSize, s.MaxSize)
	}

	return errors.Join(errs...)
}
