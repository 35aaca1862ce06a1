package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillshot/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective trainer config",
	Long: `Print the trainer config as YAML after the search order and flag
overrides have been applied. Save the output to ~/.skillshot/configs/trainer.yaml
or ./configs/trainer.yaml to customize it.

Examples:
  skillshot config
  skillshot config --defaults > configs/trainer.yaml
  skillshot config --config ./trainer.yaml --fps 144`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	cfg, err := trainerConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
