package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/battleship-shooter/internal/config"
	"github.com/vovakirdan/battleship-shooter/internal/games/shooter"
	"github.com/vovakirdan/battleship-shooter/internal/games/shooter/sim"
)

var flagTicks int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session driven by the autopilot",
	Long: `Runs the simulation without a terminal UI. A deterministic autopilot
dodges, chases stars and shoots; the final state is printed when the ship is
hit or the tick limit is reached. The same seed always prints the same result;
without --seed a time-based seed is chosen and printed so the run can be replayed.

Examples:
  shooter simulate
  shooter simulate --ticks 36000 --seed 7
  shooter simulate --preset classic`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	addGameFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to simulate")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	p, err := applyGameFlags()
	if err != nil {
		return err
	}
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, p)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := sim.NewSeeded(cfg, flagFPS, seed)
	if err != nil {
		return err
	}

	logger.Info("simulation started", "seed", seed, "ticks", flagTicks, "powerups", cfg.PowerUps.Enabled)
	res := shooter.RunHeadless(session, shooter.NewAutopilot(), flagTicks)
	snap := session.Snapshot()
	logger.Info("simulation finished", "outcome", res.Outcome, "tick", res.Tick, "hash", snap.Hash())

	printSummary(cmd.OutOrStdout(), seed, session, snap)
	return nil
}

func printSummary(w io.Writer, seed int64, s *sim.Session, snap sim.Snapshot) {
	hud := snap.HUD
	p := s.Player()

	fmt.Fprintf(w, "Seed:     %d\n", seed)
	fmt.Fprintf(w, "Outcome:  %s\n", s.Outcome())
	fmt.Fprintf(w, "Ticks:    %d\n", s.Tick())
	fmt.Fprintf(w, "Kills:    %d\n", hud.Kills)
	fmt.Fprintf(w, "Shots:    %d\n", hud.Shots)
	if hud.PowerUpsEnabled {
		fmt.Fprintf(w, "Stars:    %d\n", p.StarsCollected)
		fmt.Fprintf(w, "Pattern:  %s\n", p.Pattern())
	}
	fmt.Fprintf(w, "Hash:     %d\n", snap.Hash())
}
