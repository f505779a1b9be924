package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/battleship-shooter/internal/core"
)

// recordingGame remembers what the model fed it.
type recordingGame struct {
	resets   int
	inputs   []core.InputFrame
	gameOver bool
	seeds    []int64
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.gameOver = false
	g.seeds = append(g.seeds, cfg.Seed)
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	if in.Has(core.ActionQuit) {
		g.gameOver = true
	}
	return core.StepResult{State: g.State()}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "FRAME")
}

func (g *recordingGame) State() core.GameState {
	return core.GameState{GameOver: g.gameOver}
}

func newTestModel(g *recordingGame) *Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 5}, log.New(io.Discard))
	m.Init()
	return m
}

func TestModelInit(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	if g.resets != 1 || g.seeds[0] != 5 {
		t.Errorf("Init: resets=%d seeds=%v", g.resets, g.seeds)
	}
	if m.screen.Height() != 11 {
		t.Errorf("screen height = %d, want 11 (one row for help)", m.screen.Height())
	}
}

func TestModelTickFeedsInput(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(g.inputs) != 1 {
		t.Fatalf("steps = %d, want 1", len(g.inputs))
	}
	in := g.inputs[0]
	if in.MoveDir() != 1 || !in.Has(core.ActionFire) {
		t.Errorf("input = %+v, want right and fire", in.Actions)
	}

	m.Update(TickMsg{})
	if g.inputs[1].Has(core.ActionFire) {
		t.Error("fire should not repeat without a new key press")
	}
	if g.inputs[1].MoveDir() != 1 {
		t.Error("direction should stay held")
	}
}

func TestModelQuit(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.quitting {
		t.Error("model should be quitting")
	}
	if len(g.inputs) != 1 || !g.inputs[0].Has(core.ActionQuit) {
		t.Error("game should receive the quit action")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelRestart(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	// Restart is ignored while the game runs.
	m.Update(runeKey('r'))
	m.Update(TickMsg{})
	if g.resets != 1 {
		t.Fatalf("restart during play reset the game")
	}

	g.gameOver = true
	m.Update(TickMsg{})
	m.Update(runeKey('r'))
	m.Update(TickMsg{})
	if g.resets != 2 {
		t.Fatalf("resets = %d, want 2", g.resets)
	}
	if g.seeds[1] == g.seeds[0] {
		t.Error("restart should use a new seed")
	}
}

func TestModelScreenshot(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m.screenshotDir = t.TempDir()

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("screenshots = %d, want 1", len(files))
	}
	if !strings.HasPrefix(files[0].Name(), "recording_") {
		t.Errorf("unexpected screenshot name %q", files[0].Name())
	}
	data, err := os.ReadFile(filepath.Join(m.screenshotDir, files[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "FRAME") {
		t.Errorf("screenshot content = %q", data)
	}
}

func TestModelResizeAndHelp(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}

	m.Update(runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should toggle full help")
	}
	if m.screen.Height() != 27 {
		t.Errorf("screen height with full help = %d, want 27", m.screen.Height())
	}

	if view := m.View(); !strings.Contains(view, "FRAME") || !strings.Contains(view, "quit") {
		t.Errorf("view should include the game and the help footer: %q", view)
	}
}
