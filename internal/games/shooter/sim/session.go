// Package sim is the deterministic simulation core of the shooter: entity
// movement, collisions, and the power-up state machine. It knows nothing
// about terminals, timing or logging; a host feeds it one Intent per tick
// and draws the Snapshot it produces.
package sim

import (
	"fmt"

	"github.com/vovakirdan/battleship-shooter/internal/config"
	"github.com/vovakirdan/battleship-shooter/internal/core"
)

// Outcome is the terminal state of a session, or OutcomeNone while running.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLoss
	OutcomeQuit
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "running"
	case OutcomeLoss:
		return "loss"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent is the sampled player input for one tick.
type Intent struct {
	MoveDir  int  // -1 left, 0 none, +1 right; other values are clamped
	FireEdge bool // Fire was pressed since the previous tick
	Quit     bool
}

// StepResult reports what one Step did.
type StepResult struct {
	Tick    uint64 // Ticks processed so far
	Outcome Outcome
	Events  Events
}

// Session is one play-through: it owns the world and drives the engine.
type Session struct {
	cfg      config.ShooterConfig
	tickRate int

	world   World
	spawner *Spawner
	ctrl    *Controller
	engine  *Engine

	tick    uint64
	outcome Outcome
	kills   int
	shots   int
}

// New creates a session. tickRate only affects the seconds shown in the HUD;
// a non-positive value means 60. A nil src seeds the default LCG.
func New(cfg config.ShooterConfig, tickRate int, src Source) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	s := &Session{cfg: cfg, tickRate: tickRate}
	s.spawner = NewSpawner(cfg, NewRNG(src))
	s.world.Player = s.spawner.SpawnPlayer()
	s.ctrl = NewController(&s.world.Player, cfg.PowerUps)
	s.engine = NewEngine(cfg, s.spawner, s.ctrl)

	s.world.Enemies = make([]Enemy, cfg.Enemies.Count)
	for i := range s.world.Enemies {
		e := s.spawner.SpawnEnemy()
		e.Slot = i
		s.world.Enemies[i] = e
	}
	s.world.Stars = make([]Star, cfg.Stars.Count)
	for i := range s.world.Stars {
		s.world.Stars[i] = s.spawner.SpawnStar()
	}

	return s, nil
}

// NewSeeded creates a session driven by an LCG with the given seed.
func NewSeeded(cfg config.ShooterConfig, tickRate int, seed int64) (*Session, error) {
	return New(cfg, tickRate, NewLCG(seed))
}

// Step advances the session by one tick. Once the session has terminated,
// Step changes nothing and keeps reporting the same outcome.
func (s *Session) Step(in Intent) StepResult {
	if s.outcome != OutcomeNone {
		return StepResult{Tick: s.tick, Outcome: s.outcome}
	}
	if in.Quit {
		s.outcome = OutcomeQuit
		return StepResult{Tick: s.tick, Outcome: s.outcome}
	}

	var ev Events

	p := &s.world.Player
	p.VX = core.Clamp(in.MoveDir, -1, 1) * s.cfg.Player.Speed

	// Shots spawn before movement so they travel on their first tick too.
	for _, sp := range s.ctrl.Fire(in.FireEdge) {
		s.world.Projectiles = append(s.world.Projectiles, s.spawner.SpawnProjectile(sp.CenterX, sp.Bottom))
		ev.Shots++
	}

	s.outcome = s.engine.Run(&s.world, &ev)
	s.tick++
	s.shots += ev.Shots
	s.kills += len(ev.Kills)

	return StepResult{Tick: s.tick, Outcome: s.outcome, Events: ev}
}

// Quit terminates a running session with OutcomeQuit.
func (s *Session) Quit() {
	if s.outcome == OutcomeNone {
		s.outcome = OutcomeQuit
	}
}

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Terminated reports whether the session has ended.
func (s *Session) Terminated() bool { return s.outcome != OutcomeNone }

// Tick returns the number of ticks processed.
func (s *Session) Tick() uint64 { return s.tick }

// Kills returns the number of enemies destroyed.
func (s *Session) Kills() int { return s.kills }

// Shots returns the number of projectiles fired.
func (s *Session) Shots() int { return s.shots }

// Config returns the configuration the session was created with.
func (s *Session) Config() config.ShooterConfig { return s.cfg }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.world.Player }

// Enemies returns a copy of the enemy arena in slot order.
func (s *Session) Enemies() []Enemy { return append([]Enemy(nil), s.world.Enemies...) }

// Projectiles returns a copy of the live projectiles.
func (s *Session) Projectiles() []Projectile {
	return append([]Projectile(nil), s.world.Projectiles...)
}

// PowerUps returns a copy of the live power-ups in spawn order.
func (s *Session) PowerUps() []PowerUp { return append([]PowerUp(nil), s.world.PowerUps...) }
