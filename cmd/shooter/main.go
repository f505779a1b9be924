// shooter is a terminal arcade shooter: pilot a ship, shoot down descending
// enemies and collect stars for double and triple shot.
//
// Usage:
//
//	shooter play [game]      - Play (default: shooter)
//	shooter list             - List game variants
//	shooter config           - Print the effective configuration as YAML
//	shooter simulate         - Run a headless session with the autopilot
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Log destination (default: ~/.arcade/shooter.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/battleship-shooter/internal/games/shooter"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

// logger is set up before any subcommand runs.
var (
	logger    = log.New(os.Stderr)
	closeLogs = func() error { return nil }
)

func main() {
	err := rootCmd.Execute()
	//nolint:errcheck // Best-effort close on exit
	closeLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Battleship Shooter - an arcade shooter in your terminal",
	Long: `Battleship Shooter is a terminal arcade game. Move your ship along the
bottom of the screen, shoot down the enemy ships falling from above and
catch the stars they drop: every star grants a few seconds of double shot,
five make it permanent and every ten add a burst of triple shot.

Available commands:
  play      - Play a game variant
  list      - Show all game variants
  config    - Print the effective configuration
  simulate  - Run a headless session driven by the autopilot

Examples:
  shooter play
  shooter play shooter_classic
  shooter play --preset classic --seed 42
  shooter config > ~/.arcade/configs/shooter.yaml
  shooter simulate --ticks 3600 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, closer, err := newLogger(flagLogFile, flagLogLevel)
		if err != nil {
			return err
		}
		logger = l
		closeLogs = closer
		shooter.SetLogger(logger.WithPrefix("shooter"))
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/shooter.log", "Log file path (empty = discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simulateCmd)
}
