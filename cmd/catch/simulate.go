package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catch-treasure/internal/core"
	"github.com/vovakirdan/catch-treasure/internal/games/catch"
	"github.com/vovakirdan/catch-treasure/internal/platform/tui"
	"github.com/vovakirdan/catch-treasure/internal/storage"
)

var (
	flagTicks     int
	flagRuns      int
	flagTolerance float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot headless",
	Long: `Play seeded games without a terminal UI. The autopilot chases
pickups, shoots bombs when it has ammo and dodges otherwise.
Each run stops at game over or after --ticks ticks.

Runs after the first reuse the game, so the best score carries over,
and use consecutive seeds.

Examples:
  catch simulate --seed 42
  catch simulate --seed 1 --runs 5 --ticks 18000
  catch simulate --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 60*60*5, "Maximum ticks per run")
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	simulateCmd.Flags().Float64Var(&flagTolerance, "tolerance", 6, "Autopilot alignment tolerance in world units")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagTicks <= 0 || flagRuns <= 0 {
		return fmt.Errorf("--ticks and --runs must be positive")
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	seed := resolveSeed()
	game := catch.New(cfg)
	pilot := catch.NewAutopilot(flagTolerance)

	for i := range flagRuns {
		runSeed := seed + int64(i)
		game.Reset(core.RuntimeConfig{TickRate: cfg.Timing.FPS, Seed: runSeed})
		runLog := logger.With("seed", runSeed)

		sum := catch.Simulate(game, pilot, flagTicks, func(res core.StepResult) {
			if res.LeveledUp {
				runLog.Debug("level up", "level", res.State.Level, "score", res.State.Score)
			}
		})
		runLog.Info("run finished",
			"score", sum.Score,
			"level", sum.Level,
			"ticks", sum.Ticks,
			"game_over", sum.GameOver,
		)

		outcome := storage.OutcomeQuit
		if sum.GameOver {
			outcome = storage.OutcomeGameOver
		}
		if _, err := store.RecordRun(storage.Run{
			Seed:    runSeed,
			Score:   sum.Score,
			Best:    sum.BestScore,
			Level:   sum.Level,
			Ticks:   sum.Ticks,
			Outcome: outcome,
		}); err != nil {
			runLog.Warn("run not recorded", "err", err)
		}

		fmt.Printf("seed %d: score %d  best %d  level %d  lives %d  level-ups %d  ticks %d  game over %v\n",
			runSeed, sum.Score, sum.BestScore, sum.Level, sum.Lives, sum.LevelUps, sum.Ticks, sum.GameOver)
	}

	if flagRuns > 1 {
		printRuns(store, cfg.Timing.FPS, logger)
	}
	return nil
}

// printRuns writes the ledger report to stdout.
func printRuns(store *storage.Store, fps int, logger *log.Logger) {
	report, err := tui.RunsReport(store, fps)
	if err != nil {
		logger.Warn("cannot list runs", "err", err)
		return
	}
	fmt.Println(report)
}
