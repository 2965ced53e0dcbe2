package config

import "math"

// Progression calculates level-dependent game parameters from the score.
// Level is never stored independently of the score it was derived from.
type Progression struct {
	cfg          ProgressionConfig
	levelUpEvery int
}

// NewProgression creates a progression for the given settings.
func NewProgression(cfg ProgressionConfig, levelUpEvery int) *Progression {
	if levelUpEvery <= 0 {
		levelUpEvery = 1 // Prevent division by zero
	}
	return &Progression{
		cfg:          cfg,
		levelUpEvery: levelUpEvery,
	}
}

// LevelForScore returns 1 + floor(score / level_up_every).
func (p *Progression) LevelForScore(score int) int {
	if score < 0 {
		score = 0
	}
	return 1 + score/p.levelUpEvery
}

// SpawnInterval returns the spawn interval in milliseconds for a level:
// max(min_interval, round(base_interval * decay^(level-1))).
func (p *Progression) SpawnInterval(level int) int {
	if level < 1 {
		level = 1
	}
	decayed := float64(p.cfg.BaseIntervalMS) * math.Pow(p.cfg.IntervalDecay, float64(level-1))
	return max(p.cfg.MinIntervalMS, int(math.Round(decayed)))
}

// BaseInterval returns the level 1 spawn interval in milliseconds.
func (p *Progression) BaseInterval() int {
	return p.SpawnInterval(1)
}

// BombChance returns the probability that a spawned item is a bomb.
func (p *Progression) BombChance(level int) float64 {
	return clampF(p.cfg.BombBase+float64(level)*p.cfg.BombPerLevel, p.cfg.BombBase, p.cfg.BombMax)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
