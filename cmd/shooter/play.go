package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/battleship-shooter/internal/config"
	"github.com/vovakirdan/battleship-shooter/internal/core"
	"github.com/vovakirdan/battleship-shooter/internal/games/shooter"
	"github.com/vovakirdan/battleship-shooter/internal/platform/tui"
	"github.com/vovakirdan/battleship-shooter/internal/registry"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game variant",
	Long: `Start playing. Without an argument the standard shooter starts.

Controls:
  ←/→ or A/D    - Move
  Space/↑       - Fire
  P/Esc         - Pause
  R             - Restart (after game over)
  Ctrl+S        - Save a screenshot to ~/.arcade/screenshots
  ?             - Toggle full help
  Q/Ctrl+C      - Quit

Presets:
  standard  - Power-ups enabled (default)
  classic   - Single shot only, no power-ups

Examples:
  shooter play
  shooter play shooter_classic
  shooter play --preset classic
  shooter play --config ./my-shooter.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that select the game configuration.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Config preset: standard, classic")
}

// applyGameFlags validates the game flags and hands them to the game package.
func applyGameFlags() (config.Preset, error) {
	p, ok := config.ParsePreset(flagPreset)
	if !ok {
		return "", fmt.Errorf("unknown preset %q (want standard or classic)", flagPreset)
	}
	shooter.SetConfigPath(flagConfig)
	shooter.SetPreset(p)
	return p, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := shooter.IDStandard
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'shooter list' to see available games", gameID)
	}

	if _, err := applyGameFlags(); err != nil {
		return err
	}
	// An explicit bad config is reported before the terminal switches screens.
	if flagConfig != "" {
		if _, err := config.LoadShooter(flagConfig); err != nil {
			return err
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
