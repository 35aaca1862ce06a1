package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skillshot/internal/core"
	"github.com/vovakirdan/skillshot/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [drill]",
	Short: "Train in the terminal",
	Long: `Start a training session in the terminal. The terminal must report
mouse events.

Controls:
  Left click  - Fire at the clicked point
  Space       - Fire at the hovered point
  Ctrl+S      - Save a text screenshot
  Q/Esc       - Quit

Logs are discarded unless --log-file is given, since the session owns the
terminal.

Examples:
  skillshot play
  skillshot play skillshot-classic
  skillshot play --config ./trainer.yaml --log-file skillshot.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := newDrill(drillArg(args))
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "skillshot")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	state, err := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: game.Config().Simulation.TickRate,
			Seed:     seed(),
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	printSummary(state.Score, state.ShotsFired, state.Accuracy)
	return nil
}
