package sim

import (
	"github.com/vovakirdan/battleship-shooter/internal/config"
)

// World holds every entity collection of a session. The session owns it and
// lends it to the engine for one tick at a time.
type World struct {
	Player      Player
	Projectiles []Projectile // Spawn order
	Enemies     []Enemy      // Indexed by slot
	PowerUps    []PowerUp    // Spawn order, so ascending ID
	Stars       []Star
}

// Kill records an enemy destroyed by a projectile.
type Kill struct {
	Slot    int
	EnemyID uint64 // ID before the respawn
	X, Y    int    // Center at the moment of destruction
}

// Events lists what happened during one tick.
type Events struct {
	Shots     int
	Kills     []Kill
	Drops     []uint64 // IDs of power-ups spawned this tick
	Collected []uint64 // IDs of power-ups collected this tick, in collection order
}

// Engine runs the ordered per-tick passes: move, decay timers, cull,
// projectile hits, power-up pickup, player hit.
type Engine struct {
	cfg     config.ShooterConfig
	spawner *Spawner
	ctrl    *Controller
	spent   []bool // Scratch: projectiles consumed this tick
}

// NewEngine creates an engine sharing the session's spawner and controller.
func NewEngine(cfg config.ShooterConfig, spawner *Spawner, ctrl *Controller) *Engine {
	return &Engine{cfg: cfg, spawner: spawner, ctrl: ctrl}
}

// Run advances the world by one tick and reports the outcome. On a loss the
// world is left exactly as it was when the collision was detected.
func (e *Engine) Run(w *World, ev *Events) Outcome {
	e.move(w)
	e.ctrl.Update()
	e.cull(w)
	e.resolveProjectileHits(w, ev)
	e.collectPowerUps(w, ev)
	if e.playerHit(w) {
		return OutcomeLoss
	}
	return OutcomeNone
}

func (e *Engine) move(w *World) {
	w.Player.Translate(w.Player.VX, 0)
	w.Player.ClampX(e.cfg.Playfield.Width)

	for i := range w.Projectiles {
		w.Projectiles[i].Translate(0, w.Projectiles[i].VY)
	}
	for i := range w.Enemies {
		w.Enemies[i].Translate(0, w.Enemies[i].VY)
	}
	for i := range w.PowerUps {
		w.PowerUps[i].Translate(0, w.PowerUps[i].VY)
	}
	for i := range w.Stars {
		st := &w.Stars[i]
		st.Y += st.Speed
		if st.Y > e.cfg.Playfield.Height {
			e.spawner.WrapStar(st)
		}
	}
}

func (e *Engine) cull(w *World) {
	height := e.cfg.Playfield.Height

	keptShots := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Bottom() >= 0 {
			keptShots = append(keptShots, p)
		}
	}
	w.Projectiles = keptShots

	keptDrops := w.PowerUps[:0]
	for _, pu := range w.PowerUps {
		if pu.Y <= height {
			keptDrops = append(keptDrops, pu)
		}
	}
	w.PowerUps = keptDrops

	for i := range w.Enemies {
		if w.Enemies[i].Y > height {
			e.spawner.RespawnEnemy(&w.Enemies[i])
		}
	}
}

// resolveProjectileHits visits every enemy slot once, in slot order. An enemy
// consumes all live projectiles overlapping it; a consumed projectile cannot
// hit a later enemy. The slot is respawned immediately and never revisited
// this tick, so a destroyed enemy cannot be hit twice.
func (e *Engine) resolveProjectileHits(w *World, ev *Events) {
	if len(w.Projectiles) == 0 {
		return
	}

	e.spent = e.spent[:0]
	for range w.Projectiles {
		e.spent = append(e.spent, false)
	}

	for i := range w.Enemies {
		en := &w.Enemies[i]
		hit := false
		for j := range w.Projectiles {
			if !e.spent[j] && w.Projectiles[j].Intersects(en.Rect) {
				e.spent[j] = true
				hit = true
			}
		}
		if !hit {
			continue
		}

		cx, cy := en.Center()
		ev.Kills = append(ev.Kills, Kill{Slot: en.Slot, EnemyID: en.ID, X: cx, Y: cy})
		e.spawner.RespawnEnemy(en)

		if e.spawner.RollDrop() {
			pu := e.spawner.SpawnPowerUp(cx, cy)
			w.PowerUps = append(w.PowerUps, pu)
			ev.Drops = append(ev.Drops, pu.ID)
		}
	}

	kept := w.Projectiles[:0]
	for j, p := range w.Projectiles {
		if !e.spent[j] {
			kept = append(kept, p)
		}
	}
	w.Projectiles = kept
}

// collectPowerUps removes every power-up touching the player, oldest first,
// and applies each one separately.
func (e *Engine) collectPowerUps(w *World, ev *Events) {
	kept := w.PowerUps[:0]
	for _, pu := range w.PowerUps {
		if pu.Intersects(w.Player.Rect) {
			e.ctrl.OnPowerUpCollected()
			ev.Collected = append(ev.Collected, pu.ID)
			continue
		}
		kept = append(kept, pu)
	}
	w.PowerUps = kept
}

func (e *Engine) playerHit(w *World) bool {
	for _, en := range w.Enemies {
		if en.Intersects(w.Player.Rect) {
			return true
		}
	}
	return false
}
