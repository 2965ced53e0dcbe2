// Package config provides YAML-based game configuration loading and
// level progression formulas for Catch the Treasure.
package config

// CatchConfig contains all configuration for the game.
type CatchConfig struct {
	Playfield   Playfield         `yaml:"playfield"`
	Timing      Timing            `yaml:"timing"`
	Scoring     Scoring           `yaml:"scoring"`
	Paddle      Paddle            `yaml:"paddle"`
	Projectile  Projectile        `yaml:"projectile"`
	Items       Items             `yaml:"items"`
	Effects     Effects           `yaml:"effects"`
	Progression ProgressionConfig `yaml:"progression"`
	Audio       Audio             `yaml:"audio"`
}

// Playfield defines the world dimensions the simulation runs in.
type Playfield struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Ground line sits this far above the bottom
	ExitMargin   float64 `yaml:"exit_margin"`   // Items are removed this far outside the field
}

// GroundY returns the y-coordinate of the ground line.
func (p Playfield) GroundY() float64 {
	return p.Height - p.GroundOffset
}

// Timing defines the simulation clock.
type Timing struct {
	FPS int `yaml:"fps"`
}

// FrameMS returns the duration of one tick in milliseconds.
func (t Timing) FrameMS() float64 {
	if t.FPS <= 0 {
		return 0
	}
	return 1000.0 / float64(t.FPS)
}

// Scoring defines score, lives and ammo rules.
type Scoring struct {
	LevelUpEvery      int     `yaml:"level_up_every"`
	StartLives        int     `yaml:"start_lives"`
	MaxLives          int     `yaml:"max_lives"`
	AmmoMax           int     `yaml:"ammo_max"`
	TreasureScore     int     `yaml:"treasure_score"`
	NearShotThreshold float64 `yaml:"near_shot_threshold"`
	NearShotBonus     int     `yaml:"near_shot_bonus"`
	BombShotScore     int     `yaml:"bomb_shot_score"`
}

// Paddle defines the player's paddle.
type Paddle struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	GroundGap      float64 `yaml:"ground_gap"` // Paddle bottom sits this far above the ground
	Speed          float64 `yaml:"speed"`
	CatchTolerance float64 `yaml:"catch_tolerance"`
}

// Projectile defines the player's shots.
type Projectile struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	SpawnGap   float64 `yaml:"spawn_gap"` // Spawn center sits this far above the paddle top
	ExitMargin float64 `yaml:"exit_margin"`
}

// Size is a width/height pair in world units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// ItemSizes holds the unscaled art size of every falling item kind.
type ItemSizes struct {
	Treasure  Size `yaml:"treasure"`
	Bomb      Size `yaml:"bomb"`
	Heart     Size `yaml:"heart"`
	Hourglass Size `yaml:"hourglass"`
	Ammo      Size `yaml:"ammo"`
}

// Items defines falling item spawning and motion.
type Items struct {
	MinScale        float64   `yaml:"min_scale"`
	MaxScale        float64   `yaml:"max_scale"`
	MinSize         float64   `yaml:"min_size"`
	BaseSpeed       float64   `yaml:"base_speed"`
	LevelSpeed      float64   `yaml:"level_speed"`
	SizeSpeedBase   float64   `yaml:"size_speed_base"`
	SizeSpeedFactor float64   `yaml:"size_speed_factor"`
	Jitter          float64   `yaml:"jitter"`
	PhaseStep       float64   `yaml:"phase_step"`
	Sway            float64   `yaml:"sway"`
	BombSway        float64   `yaml:"bomb_sway"`
	HeartChance     float64   `yaml:"heart_chance"`
	HourglassChance float64   `yaml:"hourglass_chance"`
	AmmoChance      float64   `yaml:"ammo_chance"`
	Sizes           ItemSizes `yaml:"sizes"`
}

// Effects defines the slow-motion effect and explosion particles.
type Effects struct {
	SlowSeconds   float64 `yaml:"slow_seconds"`
	SlowFactor    float64 `yaml:"slow_factor"`
	SparkCount    int     `yaml:"spark_count"`
	SparkSpeedMin float64 `yaml:"spark_speed_min"`
	SparkSpeedMax float64 `yaml:"spark_speed_max"`
	SparkLifeMin  int     `yaml:"spark_life_min"`
	SparkLifeMax  int     `yaml:"spark_life_max"`
	Gravity       float64 `yaml:"gravity"`
	SmokeLife     int     `yaml:"smoke_life"`
	SmokeStart    float64 `yaml:"smoke_start"`
	SmokeEnd      float64 `yaml:"smoke_end"`
	BombHitLift   float64 `yaml:"bomb_hit_lift"` // Explosion sits this far above the paddle top
}

// SlowFrames returns the slow-motion duration in ticks.
func (e Effects) SlowFrames(fps int) int {
	return int(float64(fps) * e.SlowSeconds)
}

// ProgressionConfig defines how difficulty escalates with level.
type ProgressionConfig struct {
	BaseIntervalMS int     `yaml:"base_interval_ms"`
	MinIntervalMS  int     `yaml:"min_interval_ms"`
	IntervalDecay  float64 `yaml:"interval_decay"` // Multiplier applied per level above 1
	BombBase       float64 `yaml:"bomb_base"`
	BombPerLevel   float64 `yaml:"bomb_per_level"`
	BombMax        float64 `yaml:"bomb_max"`
}

// Audio defines the sound collaborator.
type Audio struct {
	Enabled   bool    `yaml:"enabled"`
	SoundsDir string  `yaml:"sounds_dir"`
	Volume    float64 `yaml:"volume"` // Linear gain, 1.0 = unchanged
}
