package sim

import (
	"github.com/vovakirdan/battleship-shooter/internal/core"
)

// EntityView is one drawable entity in a snapshot.
type EntityView struct {
	Kind Kind
	ID   uint64 // 0 for the player and stars
	Slot int    // Arena slot of an enemy, stable across respawns; 0 otherwise
	Rect core.Rect
}

// HUD is the status line data derived from the player's firing state.
type HUD struct {
	DoubleStarsCollected   int // Capped at the permanent threshold
	DoubleGoal             int
	DoubleActive           bool
	DoubleIsPermanent      bool
	DoubleSecondsRemaining float64

	TripleStarsProgress    int // 0 .. TripleGoal-1
	TripleGoal             int
	TripleActive           bool
	TripleSecondsRemaining float64

	PowerUpsEnabled bool
	Kills           int
	Shots           int
}

// Snapshot is an immutable copy of the world for rendering and comparison.
// Entities are in draw order: stars, power-ups, enemies, projectiles, player.
type Snapshot struct {
	Tick     uint64
	Width    int
	Height   int
	Outcome  Outcome
	Entities []EntityView
	HUD      HUD
}

// Snapshot returns a copy of the current world.
func (s *Session) Snapshot() Snapshot {
	w := &s.world
	n := len(w.Stars) + len(w.PowerUps) + len(w.Enemies) + len(w.Projectiles) + 1
	entities := make([]EntityView, 0, n)

	for _, st := range w.Stars {
		entities = append(entities, EntityView{Kind: KindStar, Rect: st.Bounds()})
	}
	for _, pu := range w.PowerUps {
		entities = append(entities, EntityView{Kind: KindPowerUp, ID: pu.ID, Rect: pu.Rect})
	}
	for _, e := range w.Enemies {
		entities = append(entities, EntityView{Kind: KindEnemy, ID: e.ID, Slot: e.Slot, Rect: e.Rect})
	}
	for _, p := range w.Projectiles {
		entities = append(entities, EntityView{Kind: KindProjectile, ID: p.ID, Rect: p.Rect})
	}
	entities = append(entities, EntityView{Kind: KindPlayer, Rect: w.Player.Rect})

	return Snapshot{
		Tick:     s.tick,
		Width:    s.cfg.Playfield.Width,
		Height:   s.cfg.Playfield.Height,
		Outcome:  s.outcome,
		Entities: entities,
		HUD:      s.hud(),
	}
}

func (s *Session) hud() HUD {
	f := s.world.Player.FiringState
	pc := s.cfg.PowerUps
	double, triple := s.ctrl.Remaining()
	rate := float64(s.tickRate)

	return HUD{
		DoubleStarsCollected:   core.Min(f.StarsCollected, pc.PermanentThreshold),
		DoubleGoal:             pc.PermanentThreshold,
		DoubleActive:           f.DoubleActive,
		DoubleIsPermanent:      f.DoubleIsPermanent,
		DoubleSecondsRemaining: float64(double) / rate,
		TripleStarsProgress:    f.BonusStars,
		TripleGoal:             pc.TripleThreshold,
		TripleActive:           f.TripleActive,
		TripleSecondsRemaining: float64(triple) / rate,
		PowerUpsEnabled:        pc.Enabled,
		Kills:                  s.kills,
		Shots:                  s.shots,
	}
}

// Count returns how many entities of the given kind the snapshot holds.
func (snap Snapshot) Count(k Kind) int {
	n := 0
	for _, e := range snap.Entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Outcome) //#nosec G115 -- hash computation

	for _, e := range snap.Entities {
		h = h*31 + uint64(e.Kind)
		h = h*31 + e.ID
		h = h*31 + uint64(e.Slot)   //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Rect.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Rect.Y) //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Rect.W) //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Rect.H) //#nosec G115 -- hash computation
	}

	hud := snap.HUD
	h = h*31 + uint64(hud.DoubleStarsCollected) //#nosec G115 -- hash computation
	h = h*31 + uint64(hud.TripleStarsProgress)  //#nosec G115 -- hash computation
	h = h*31 + boolBit(hud.DoubleActive)
	h = h*31 + boolBit(hud.DoubleIsPermanent)
	h = h*31 + boolBit(hud.TripleActive)
	h = h*31 + uint64(hud.Kills) //#nosec G115 -- hash computation
	h = h*31 + uint64(hud.Shots) //#nosec G115 -- hash computation

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
