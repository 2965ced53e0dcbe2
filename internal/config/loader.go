package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadCatch.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// localConfigPath is the project-relative config file.
const localConfigPath = "configs/catch.yaml"

// LoadCatch loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.catch-treasure/configs/catch.yaml -> ./configs/catch.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
// A custom path that cannot be read, parsed or validated is an error; the
// implicit locations are skipped when broken.
func LoadCatch(customPath string) (CatchConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCatchConfig(), SourceBuiltin, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultCatchConfig(), SourceBuiltin, fmt.Errorf("config: failed to load %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("catch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultCatchYAML)
	if err != nil {
		return DefaultCatchConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (CatchConfig, error) {
	cfg := DefaultCatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catch-treasure", "configs", filename)
}

// ValidationError describes a single invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the configuration describes a playable game.
// All problems are reported together.
func (c CatchConfig) Validate() error {
	var errs []error
	check := func(ok bool, field, msg string) {
		if !ok {
			errs = append(errs, ValidationError{Field: field, Message: msg})
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield", "width and height must be positive")
	check(c.Playfield.GroundOffset >= 0 && c.Playfield.GroundOffset < c.Playfield.Height, "playfield.ground_offset", "must lie inside the playfield")
	check(c.Timing.FPS > 0, "timing.fps", "must be positive")
	check(c.Scoring.LevelUpEvery > 0, "scoring.level_up_every", "must be positive")
	check(c.Scoring.MaxLives > 0, "scoring.max_lives", "must be positive")
	check(c.Scoring.StartLives > 0 && c.Scoring.StartLives <= c.Scoring.MaxLives, "scoring.start_lives", "must be in [1, max_lives]")
	check(c.Scoring.AmmoMax >= 0, "scoring.ammo_max", "must not be negative")
	check(c.Scoring.NearShotThreshold >= 0, "scoring.near_shot_threshold", "must not be negative")
	check(c.Paddle.Width > 0 && c.Paddle.Width <= c.Playfield.Width, "paddle.width", "must be positive and fit the playfield")
	check(c.Paddle.Height > 0, "paddle.height", "must be positive")
	check(c.Projectile.Speed > 0, "projectile.speed", "must be positive")
	check(c.Items.MinScale > 0 && c.Items.MinScale <= c.Items.MaxScale, "items.min_scale", "must be positive and not above max_scale")
	check(c.Items.Jitter >= 0, "items.jitter", "must not be negative")

	fixed := c.Items.HeartChance + c.Items.HourglassChance + c.Items.AmmoChance
	check(c.Items.HeartChance >= 0 && c.Items.HourglassChance >= 0 && c.Items.AmmoChance >= 0, "items", "chances must not be negative")
	check(fixed+c.Progression.BombMax <= 1, "items", "pickup chances plus progression.bomb_max must not exceed 1")

	check(c.Effects.SlowSeconds >= 0, "effects.slow_seconds", "must not be negative")
	check(c.Effects.SlowFactor > 0 && c.Effects.SlowFactor <= 1, "effects.slow_factor", "must be in (0, 1]")
	check(c.Effects.SparkLifeMin > 0 && c.Effects.SparkLifeMin <= c.Effects.SparkLifeMax, "effects.spark_life_min", "must be positive and not above spark_life_max")
	check(c.Effects.SmokeLife > 0, "effects.smoke_life", "must be positive")

	check(c.Progression.BaseIntervalMS > 0, "progression.base_interval_ms", "must be positive")
	check(c.Progression.MinIntervalMS > 0 && c.Progression.MinIntervalMS <= c.Progression.BaseIntervalMS, "progression.min_interval_ms", "must be positive and not above base_interval_ms")
	check(c.Progression.IntervalDecay > 0 && c.Progression.IntervalDecay <= 1, "progression.interval_decay", "must be in (0, 1]")
	check(c.Progression.BombBase >= 0 && c.Progression.BombBase <= c.Progression.BombMax, "progression.bomb_base", "must be in [0, bomb_max]")

	return errors.Join(errs...)
}
