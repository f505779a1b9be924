// Package shooter adapts the simulation core to the arcade platform.
// The player pilots a ship along the bottom of the screen, shoots down
// descending enemies and collects stars that upgrade the firing pattern.
package shooter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/battleship-shooter/internal/config"
	"github.com/vovakirdan/battleship-shooter/internal/core"
	"github.com/vovakirdan/battleship-shooter/internal/games/shooter/sim"
	"github.com/vovakirdan/battleship-shooter/internal/registry"
)

// Registered game IDs.
const (
	IDStandard = "shooter"
	IDClassic  = "shooter_classic"
)

// configPath stores the custom config path set via CLI
var configPath string
var preset config.Preset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the configuration preset applied on every reset.
func SetPreset(p config.Preset) {
	preset = p
}

// SetLogger sets the logger used by every game instance. A nil logger
// discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game on top of a sim.Session.
type Game struct {
	id      string
	title   string
	classic bool // Power-ups are always disabled

	runtime core.RuntimeConfig
	session *sim.Session
	paused  bool
	log     *log.Logger
}

// New creates the standard shooter with power-ups.
func New() *Game {
	return &Game{id: IDStandard, title: "Battleship Shooter"}
}

// NewClassic creates the power-up-free variant.
func NewClassic() *Game {
	return &Game{id: IDClassic, title: "Battleship Shooter (Classic)", classic: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new session. A broken config file is logged and replaced
// by the built-in defaults so the game is always playable.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime.Normalized()
	g.log = logger.With("game", g.id)

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		g.log.Warn("using default config", "error", err)
		cfg = config.DefaultShooterConfig()
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	if g.classic {
		config.ApplyPreset(&cfg, config.PresetClassic)
	}

	session, cfg := g.newSession(cfg)
	g.session = session
	g.paused = false

	g.log.Debug("session started",
		"seed", g.runtime.Seed,
		"powerups", cfg.PowerUps.Enabled,
		"enemies", cfg.Enemies.Count)
}

// newSession seeds a session from cfg. A config the simulation rejects is
// logged and replaced by the built-in defaults, which must always be valid.
func (g *Game) newSession(cfg config.ShooterConfig) (*sim.Session, config.ShooterConfig) {
	session, err := sim.NewSeeded(cfg, g.runtime.TickRate, g.runtime.Seed)
	if err == nil {
		return session, cfg
	}
	g.log.Warn("invalid config, using defaults", "error", err)

	cfg = config.DefaultShooterConfig()
	if g.classic {
		config.ApplyPreset(&cfg, config.PresetClassic)
	}
	session, err = sim.NewSeeded(cfg, g.runtime.TickRate, g.runtime.Seed)
	if err != nil {
		panic(fmt.Sprintf("shooter: built-in config rejected: %v", err))
	}
	return session, cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	if g.session.Terminated() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.session.Step(sim.Intent{Quit: true})
		g.logOutcome()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.session.Step(IntentFromInput(in))
	g.logEvents(res.Events)
	if res.Outcome != sim.OutcomeNone {
		g.logOutcome()
	}

	return core.StepResult{State: g.State()}
}

// IntentFromInput converts a platform input frame to a simulation intent.
func IntentFromInput(in core.InputFrame) sim.Intent {
	return sim.Intent{
		MoveDir:  in.MoveDir(),
		FireEdge: in.Has(core.ActionFire),
		Quit:     in.Has(core.ActionQuit),
	}
}

func (g *Game) logEvents(ev sim.Events) {
	for _, k := range ev.Kills {
		g.log.Debug("enemy destroyed", "slot", k.Slot, "id", k.EnemyID, "x", k.X, "y", k.Y)
	}
	for _, id := range ev.Drops {
		g.log.Debug("power-up dropped", "id", id)
	}
	if len(ev.Collected) > 0 {
		p := g.session.Player()
		g.log.Debug("power-up collected",
			"count", len(ev.Collected),
			"stars", p.StarsCollected,
			"pattern", p.Pattern())
	}
}

func (g *Game) logOutcome() {
	g.log.Info("session ended",
		"outcome", g.session.Outcome(),
		"tick", g.session.Tick(),
		"kills", g.session.Kills(),
		"shots", g.session.Shots())
}

// State returns the current game state. The score is the number of enemies
// destroyed.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Kills(),
		GameOver: g.session.Terminated(),
		Paused:   g.paused,
	}
}

// Outcome returns how the current session ended, or sim.OutcomeNone.
func (g *Game) Outcome() sim.Outcome {
	if g.session == nil {
		return sim.OutcomeNone
	}
	return g.session.Outcome()
}

// Snapshot returns the current world, for headless runs and tests.
func (g *Game) Snapshot() sim.Snapshot {
	if g.session == nil {
		return sim.Snapshot{}
	}
	return g.session.Snapshot()
}

// Register both variants with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          IDStandard,
		Title:       "Battleship Shooter",
		Description: "Shoot down enemy ships, collect stars for double and triple shot",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.GameInfo{
		ID:          IDClassic,
		Title:       "Battleship Shooter (Classic)",
		Description: "Single shot only, no power-ups",
	}, func() registry.Game {
		return NewClassic()
	})
}
