package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillshot/internal/games/skillshot"
	"github.com/vovakirdan/skillshot/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window [drill]",
	Short: "Train in a desktop window",
	Long: `Open an arena-sized window and start a training session.

Controls:
  Left click  - Fire at the cursor
  Q/Esc       - Quit (closing the window works too)

Examples:
  skillshot window
  skillshot window skillshot-classic --fps 120`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	drill, err := newDrill(drillArg(args))
	if err != nil {
		return err
	}
	game, ok := drill.(*skillshot.Game)
	if !ok {
		return fmt.Errorf("drill %q cannot run in a window", drill.ID())
	}

	logger, closeLog, err := newLogger(os.Stderr, "skillshot")
	if err != nil {
		return err
	}
	defer closeLog()

	state, err := gui.Run(game, gui.Options{Seed: seed(), Logger: logger})
	if err != nil {
		return err
	}

	printSummary(state.Score, state.ShotsFired, state.Accuracy)
	return nil
}
