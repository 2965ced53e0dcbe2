package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catch-treasure/internal/audio"
	"github.com/vovakirdan/catch-treasure/internal/core"
	"github.com/vovakirdan/catch-treasure/internal/games/catch"
	"github.com/vovakirdan/catch-treasure/internal/platform/tui"
	"github.com/vovakirdan/catch-treasure/internal/storage"
)

var (
	flagMute   bool
	flagSounds string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Move the paddle
  Space            - Shoot (needs ammo)
  P                - Pause
  R                - Restart
  F                - Toggle fullscreen
  Ctrl+S           - Save a screenshot
  Esc/Q/Ctrl+C     - Quit

Sound cues are read from <sounds>/<cue>.mp3 when present
and synthesized otherwise.

Examples:
  catch play
  catch play --seed 42
  catch play --mute --log catch.log --log-level debug
  catch play --sounds ./assets/sounds`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagSounds, "sounds", "", "Directory with <cue>.mp3 sound files")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The terminal belongs to Bubble Tea, so logs go to --log or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if flagSounds != "" {
		cfg.Audio.SoundsDir = flagSounds
	}

	player := audio.NewPlayer(cfg.Audio, logger)
	player.Load(cfg.Audio.SoundsDir)
	if err := player.Initialize(); err != nil {
		// Continue silently - the game does not need sound
		logger.Warn("audio disabled", "err", err)
	}
	defer player.Close()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("run ledger unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.FPS,
		Seed:     resolveSeed(),
	}

	game := catch.New(cfg, catch.WithAudio(player))
	if err := tui.Run(game, store, logger, rcfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if store != nil {
		printRuns(store, cfg.Timing.FPS, logger)
	}
	return nil
}
