package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/battleship-shooter/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Prints the configuration a new game would use, after applying the
config file search order and the --preset flag. Redirect it to
~/.arcade/configs/shooter.yaml to start customizing.

Search order:
  --config path
  ~/.arcade/configs/shooter.yaml
  ./configs/shooter.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
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

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
