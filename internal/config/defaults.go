package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the default game configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Playfield: Playfield{
			Width:        1280,
			Height:       720,
			GroundOffset: 56,
			ExitMargin:   60,
		},
		Timing: Timing{
			FPS: 60,
		},
		Scoring: Scoring{
			LevelUpEvery:      10,
			StartLives:        3,
			MaxLives:          5,
			AmmoMax:           3,
			TreasureScore:     1,
			NearShotThreshold: 20,
			NearShotBonus:     10,
			BombShotScore:     1,
		},
		Paddle: Paddle{
			Width:          110,
			Height:         32,
			GroundGap:      8,
			Speed:          10,
			CatchTolerance: 6,
		},
		Projectile: Projectile{
			Width:      10,
			Height:     22,
			Speed:      14,
			SpawnGap:   6,
			ExitMargin: 10,
		},
		Items: Items{
			MinScale:        0.7,
			MaxScale:        1.4,
			MinSize:         12,
			BaseSpeed:       3.6,
			LevelSpeed:      0.45,
			SizeSpeedBase:   0.7,
			SizeSpeedFactor: 0.8,
			Jitter:          0.6,
			PhaseStep:       0.03,
			Sway:            0.4,
			BombSway:        0.9,
			HeartChance:     0.06,
			HourglassChance: 0.07,
			AmmoChance:      0.07,
			Sizes: ItemSizes{
				Treasure:  Size{W: 42, H: 42},
				Bomb:      Size{W: 54, H: 54},
				Heart:     Size{W: 44, H: 44},
				Hourglass: Size{W: 36, H: 50},
				Ammo:      Size{W: 26, H: 40},
			},
		},
		Effects: Effects{
			SlowSeconds:   12,
			SlowFactor:    0.5,
			SparkCount:    20,
			SparkSpeedMin: 3.5,
			SparkSpeedMax: 8,
			SparkLifeMin:  14,
			SparkLifeMax:  24,
			Gravity:       0.35,
			SmokeLife:     22,
			SmokeStart:    14,
			SmokeEnd:      60,
			BombHitLift:   8,
		},
		Progression: ProgressionConfig{
			BaseIntervalMS: 720,
			MinIntervalMS:  420,
			IntervalDecay:  0.94,
			BombBase:       0.20,
			BombPerLevel:   0.02,
			BombMax:        0.45,
		},
		Audio: Audio{
			Enabled:   true,
			SoundsDir: "sounds",
			Volume:    1.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
