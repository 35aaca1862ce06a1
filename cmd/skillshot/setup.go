package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skillshot/internal/config"
	"github.com/vovakirdan/skillshot/internal/games/skillshot"
	"github.com/vovakirdan/skillshot/internal/registry"
)

// drillArg returns the drill named on the command line, or the standard drill.
func drillArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return skillshot.DrillStandard
}

// trainerConfig loads the trainer config and applies the --fps override.
func trainerConfig() (config.TrainerConfig, error) {
	cfg, err := config.LoadTrainer(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS != 0 {
		cfg.Simulation.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("--fps: %w", err)
		}
	}
	return cfg, nil
}

// newDrill creates a registered drill configured from the command line.
func newDrill(id string) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown drill %q (run 'skillshot list' to see available drills)", id)
	}

	cfg, err := trainerConfig()
	if err != nil {
		return nil, err
	}

	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	game.Configure(cfg)
	return game, nil
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds a logger for the command. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	w, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// printSummary prints the final counters of a session.
func printSummary(score, shots int, accuracy float64) {
	fmt.Printf("Score: %d  Shots: %d  Accuracy: %.1f%%\n", score, shots, accuracy)
}
