package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-cake/internal/games/flappy"
	"github.com/vovakirdan/flappy-cake/internal/sim"
)

var (
	flagTicks     int
	flagJumpEvery int
	flagAutopilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game",
	Long: `Run a game without a terminal on a virtual clock and print the result.

The run ends at game over or after --ticks ticks. Without a pilot the bird
never flaps. With a fixed --seed the outcome is reproducible.

Examples:
  flappy sim --seed 42
  flappy sim --seed 42 --jump-every 25 --ticks 600
  flappy sim --seed 42 --autopilot --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 60*60, "Maximum number of ticks to run")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Flap every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer toward the next pipe opening")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "flappy-sim")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	if flagAutopilot && flagJumpEvery > 0 {
		return fmt.Errorf("--autopilot and --jump-every are mutually exclusive")
	}
	var pilot sim.Pilot = sim.Idle{}
	switch {
	case flagAutopilot:
		pilot = sim.DefaultAutopilot()
	case flagJumpEvery > 0:
		pilot = sim.EveryN(flagJumpEvery)
	}

	rt := runtimeConfig(cfg, 0, 0)
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game := flappy.New(cfg, nil)
	game.Start(rt)

	res, err := sim.Run(cmd.Context(), game, sim.Options{Ticks: flagTicks, Pilot: pilot}, logger)
	if err != nil {
		return err
	}

	fmt.Printf("seed=%d state=%s ticks=%d score=%s pairs=%d jumps=%d\n",
		rt.Seed, res.Status.State, res.Status.Tick,
		flappy.FormatScore(res.Status.Score), res.Status.PairsPassed, res.Jumps)
	return nil
}
