package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillshot/internal/games/skillshot"
)

var (
	flagTicks     uint64
	flagFireEvery int
	flagRealtime  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [drill]",
	Short: "Run a scripted session and print the stats",
	Long: `Run a session without a display. A scripted shooter fires at a
uniformly random arena point every --fire-every ticks. With the same --seed
the run is fully reproducible.

Examples:
  skillshot simulate --seed 7
  skillshot simulate --ticks 36000 --fire-every 10
  skillshot simulate --realtime --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagFireEvery, "fire-every", 30, "Fire once every N ticks")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the tick rate instead of running flat out")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagTicks == 0 {
		return errors.New("--ticks must be positive")
	}

	drill, err := newDrill(drillArg(args))
	if err != nil {
		return err
	}
	cfg := drill.Config()

	logger, closeLog, err := newLogger(os.Stderr, "skillshot-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	s := seed()
	session := skillshot.NewSession(cfg, s)
	source := skillshot.NewRandomFireSource(session.Arena(), flagFireEvery, s)

	rate := 0
	if flagRealtime {
		rate = cfg.Simulation.TickRate
	}

	runner := skillshot.NewRunner(session, source, hitLogger(logger), rate)
	runner.MaxTicks = flagTicks

	logger.Info("simulation started", "drill", drill.ID(), "seed", s, "ticks", flagTicks, "fire_every", flagFireEvery)

	snap, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	logger.Info("simulation finished", "tick", snap.Tick, "score", snap.Score, "shots", snap.ShotsFired)
	printSummary(snap.Score, snap.ShotsFired, snap.Accuracy)
	return nil
}

// hitLogger logs every hit and expiry at debug level.
func hitLogger(logger *log.Logger) skillshot.Presenter {
	return skillshot.PresenterFunc(func(snap skillshot.Snapshot) error {
		for range snap.Hits {
			logger.Debug("hit", "tick", snap.Tick, "score", snap.Score)
		}
		if snap.Expired > 0 {
			logger.Debug("expired", "tick", snap.Tick, "count", snap.Expired)
		}
		return nil
	})
}

var _ skillshot.EventSource = (*skillshot.RandomFireSource)(nil)
