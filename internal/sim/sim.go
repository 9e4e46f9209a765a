// Package sim runs the game headless on a virtual clock.
// Ticks and spawns follow the same schedule a real host would produce,
// so a seed and a pilot fully determine the outcome.
package sim

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-cake/internal/core"
	"github.com/vovakirdan/flappy-cake/internal/games/flappy"
)

// Options controls a headless run.
type Options struct {
	Ticks int   // Upper bound on ticks; the run also ends at game over
	Pilot Pilot // Nil means Idle
}

// Result summarizes a finished run.
type Result struct {
	Status core.Status
	Jumps  int
	Spawns int
}

// Run drives g from its current state until it is over or opts.Ticks ticks
// have elapsed. The game must already be started.
func Run(ctx context.Context, g *flappy.Game, opts Options, logger *log.Logger) (Result, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	pilot := opts.Pilot
	if pilot == nil {
		pilot = Idle{}
	}

	cfg := g.Config()
	step := core.TickInterval(cfg.Timing.TickRate)
	spawns := core.NewSpawnClock(cfg.Timing.SpawnInterval)

	logger.Debug("run started",
		"ticks", opts.Ticks,
		"tick", step,
		"spawn_interval", spawns.Interval(),
	)

	var res Result
	res.Status = g.Status()

	for tick := 0; tick < opts.Ticks && !res.Status.GameOver(); tick++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		for range spawns.Advance(step) {
			g.OnSpawnTimer()
			res.Spawns++
			logger.Debug("spawned pair", "tick", tick, "pipes", len(g.Pipes()))
		}

		if pilot.ShouldJump(g, tick) {
			g.OnInput(core.KeyDown(core.KeySpace))
			res.Jumps++
		}

		prevPairs := res.Status.PairsPassed
		res.Status = g.OnTick()

		if res.Status.PairsPassed != prevPairs {
			logger.Debug("pair passed",
				"tick", res.Status.Tick,
				"pairs", res.Status.PairsPassed,
				"score", flappy.FormatScore(res.Status.Score),
			)
		}
	}

	logger.Info("run finished",
		"state", res.Status.State,
		"tick", res.Status.Tick,
		"score", flappy.FormatScore(res.Status.Score),
		"pairs", res.Status.PairsPassed,
		"jumps", res.Jumps,
	)
	return res, nil
}
