package sim

import (
	"github.com/vovakirdan/battleship-shooter/internal/config"
)

// ProjectileSpawn asks the session for one new shot.
type ProjectileSpawn struct {
	CenterX int
	Bottom  int
}

// Controller owns the player's firing-pattern state machine. It only ever
// touches the FiringState part of the player.
type Controller struct {
	player *Player
	cfg    config.PowerUpConfig
}

// NewController binds a controller to the session's player.
func NewController(p *Player, cfg config.PowerUpConfig) *Controller {
	return &Controller{player: p, cfg: cfg}
}

// Update advances the power-up timers by one tick. A permanent double-shot
// never decays; triple-shot always does.
func (c *Controller) Update() {
	f := &c.player.FiringState

	if f.DoubleActive && !f.DoubleIsPermanent {
		f.DoubleTimer = satInc(f.DoubleTimer)
		if f.DoubleTimer >= c.cfg.Duration {
			f.DoubleActive = false
			f.DoubleTimer = 0
		}
	}

	if f.TripleActive {
		f.TripleTimer = satInc(f.TripleTimer)
		if f.TripleTimer >= c.cfg.Duration {
			f.TripleActive = false
			f.TripleTimer = 0
		}
	}
}

// OnPowerUpCollected applies one collected power-up. It is a no-op when
// power-ups are disabled.
func (c *Controller) OnPowerUpCollected() {
	if !c.cfg.Enabled {
		return
	}
	f := &c.player.FiringState

	f.StarsCollected = satInc(f.StarsCollected)
	f.BonusStars = satInc(f.BonusStars)

	f.DoubleActive = true
	if f.StarsCollected >= c.cfg.PermanentThreshold {
		f.DoubleIsPermanent = true
	} else {
		// Re-collecting before expiry refreshes the full duration.
		f.DoubleTimer = 0
	}

	if f.BonusStars >= c.cfg.TripleThreshold {
		f.TripleActive = true
		f.TripleTimer = 0
		f.BonusStars = 0
	}
}

// Fire returns the shots for a fire edge, or nil without one.
// Precedence is triple, then double, then single.
func (c *Controller) Fire(fireEdge bool) []ProjectileSpawn {
	if !fireEdge {
		return nil
	}

	var offsets []int
	switch c.player.Pattern() {
	case PatternTriple:
		offsets = tripleOffsets
	case PatternDouble:
		offsets = doubleOffsets
	default:
		offsets = singleOffsets
	}

	cx := c.player.CenterX()
	spawns := make([]ProjectileSpawn, len(offsets))
	for i, off := range offsets {
		spawns[i] = ProjectileSpawn{CenterX: cx + off, Bottom: c.player.Y}
	}
	return spawns
}

// Remaining returns the ticks left on the double and triple timers. A
// permanent or inactive upgrade reports 0.
func (c *Controller) Remaining() (double, triple int) {
	f := c.player.FiringState
	if f.DoubleActive && !f.DoubleIsPermanent {
		double = c.cfg.Duration - f.DoubleTimer
	}
	if f.TripleActive {
		triple = c.cfg.Duration - f.TripleTimer
	}
	return double, triple
}
