package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/battleship-shooter/internal/core"
	"github.com/vovakirdan/battleship-shooter/internal/registry"
)

// Rows reserved for the short and the full help footer.
const (
	shortFooterRows = 1
	fullFooterRows  = 3
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	input     *InputLatch
	gameState core.GameState
	logger    *log.Logger
	quitting  bool

	screenshotDir string // Where ctrl+s writes the current frame
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *Model {
	cfg = cfg.Normalized()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, core.Max(0, cfg.ScreenH-shortFooterRows)),
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		input:         NewInputLatch(),
		logger:        logger,
		screenshotDir: filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots"),
	}
}

// Init initializes the model and starts the game.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, core.Max(0, m.config.ScreenH-m.footerRows()))
		return m, nil
	}

	switch action := m.keys.ActionFor(msg); action {
	case core.ActionQuit:
		// Let the game record the quit before the program exits.
		quit := core.NewInputFrame()
		quit.Set(core.ActionQuit)
		m.game.Step(quit)
		m.quitting = true
		m.logger.Info("game quit", "game", m.game.ID(), "score", m.game.State().Score)
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.input.Press(action)
		}
		return m, nil
	default:
		m.input.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in its
// own coordinates, so only the screen buffer changes.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(0, msg.Height-m.footerRows()))
	m.help.Width = msg.Width
	return m, nil
}

func (m *Model) footerRows() int {
	if m.help.ShowAll {
		return fullFooterRows
	}
	return shortFooterRows
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	in := m.input.Frame()

	// Check for restart
	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.input.Release()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("game over", "game", m.game.ID(), "score", result.State.Score)
	}
	m.gameState = result.State

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
