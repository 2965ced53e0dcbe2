package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catch-treasure/internal/config"
)

// newLogger builds the process logger. Without --log it writes to fallback.
// The returned close function releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "catch",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the game configuration and applies flag overrides.
func loadConfig(logger *log.Logger) (config.CatchConfig, error) {
	cfg, source, err := config.LoadCatch(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Info("config loaded", "source", source)

	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	return cfg, nil
}

// resolveSeed picks a time-based seed when none was given.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
