// skillshot is an aim trainer: a target bounces around an arena and you
// fire projectiles at it. It runs in the terminal, in a desktop window, over
// SSH or headless.
//
// Usage:
//
//	skillshot list               - List available drills
//	skillshot play [drill]       - Train in the terminal
//	skillshot window [drill]     - Train in a desktop window
//	skillshot serve              - Start SSH server for remote training
//	skillshot simulate [drill]   - Run a scripted session and print the stats
//	skillshot config             - Print the effective trainer config
//
// Global flags:
//
//	--fps <rate>         - Override the configured tick rate
//	--seed <value>       - Set RNG seed for reproducible sessions
//	--config <path>      - Load trainer config from a YAML file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skillshot",
	Short: "Skill Shot Trainer - practice leading a moving target",
	Long: `Skill Shot Trainer is an aim trainer. A target bounces around an
800x600 arena; every click fires a projectile toward the clicked point.
A hit scores a point and respawns the target. Accuracy is hits over shots.

Available commands:
  list      - Show all available drills
  play      - Train in the terminal (mouse required)
  window    - Train in a desktop window
  serve     - Start SSH server for remote training
  simulate  - Run a scripted session without a display
  config    - Print the effective trainer config

Examples:
  skillshot play
  skillshot play skillshot-classic
  skillshot window --fps 120
  skillshot serve --ssh :2222
  skillshot simulate --ticks 3600 --fire-every 20 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use the config's tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to trainer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
