// flappy is a Flappy Bird-style game for the terminal, with a cake bonus.
//
// Usage:
//
//	flappy play     - Play in this terminal
//	flappy serve    - Start SSH server for remote play
//	flappy sim      - Run a headless game and print the result
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom game config YAML
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-cake/internal/config"
	"github.com/vovakirdan/flappy-cake/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Cake - keep the bird between the pipes",
	Long: `Flappy Cake is a terminal take on Flappy Bird.

Flap through the gaps between scrolling pipes. Each pipe pair cleared is
worth a point, and every third pair a cake appears worth five more.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless game

Examples:
  flappy play
  flappy play --seed 42 --mute
  flappy serve --ssh :2222
  flappy sim --seed 42 --autopilot`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = timing.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig resolves the game config and applies --fps.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	logger.Debug("loaded config", "source", source, "tick_rate", cfg.Timing.TickRate)
	return cfg, nil
}

// runtimeConfig combines the screen size with the tick rate and --seed.
func runtimeConfig(cfg config.FlappyConfig, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}
}
