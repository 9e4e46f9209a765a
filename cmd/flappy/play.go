package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-cake/internal/audio"
	"github.com/vovakirdan/flappy-cake/internal/core"
	"github.com/vovakirdan/flappy-cake/internal/games/flappy"
	"github.com/vovakirdan/flappy-cake/internal/platform/tui"
)

var (
	flagMute    bool
	flagVolume  float64
	flagLogFile string
	flagCues    []string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/X   - Flap (also starts a new game after game over)
  Mouse click  - Flap; releasing after game over starts a new game
  Q/Ctrl+C     - Quit

The screen is owned by the game while it runs, so logs go to --log-file.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --mute
  flappy play --cues eat,crash
  flappy play --log-file ./flappy.log --log-level debug
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Volume as a power of two (0 = unchanged, -1 = half)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().StringSliceVar(&flagCues, "cues", nil, "Only play these cues: eat, flap, crash (default all)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "flappy")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	only := make([]core.Cue, 0, len(flagCues))
	for _, name := range flagCues {
		c, parseErr := core.ParseCue(name)
		if parseErr != nil {
			return fmt.Errorf("invalid --cues: %w", parseErr)
		}
		only = append(only, c)
	}

	var cues core.CuePlayer = core.SilentCues{}
	if cfg.Audio.Enabled && !flagMute {
		volume := cfg.Audio.Volume
		if cmd.Flags().Changed("volume") {
			volume = flagVolume
		}
		player := audio.NewPlayer(volume, only...)
		if initErr := player.Init(); initErr != nil {
			// Continue without sound - game still works
			fmt.Fprintf(os.Stderr, "Warning: %v\n", initErr)
			logger.Warn("sound disabled", "error", initErr)
		} else {
			defer player.Close()
			cues = player
		}
	}

	game := flappy.New(cfg, cues)
	if err := tui.Run(game, runtimeConfig(cfg, width, height), logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
