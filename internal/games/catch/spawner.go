package catch

import (
	"math"

	"github.com/vovakirdan/catch-treasure/internal/config"
)

// RandomSource supplies the draws used by spawning and explosions.
// *rand.Rand satisfies it; tests inject stubs to force outcomes.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// Spawner creates falling items on a millisecond timer.
type Spawner struct {
	rng       RandomSource
	cfg       config.Items
	playfield config.Playfield
	prog      *config.Progression

	frameMS    float64 // Time added per tick
	intervalMS int     // Current spawn cadence
	elapsedMS  float64 // Time accumulated toward the next spawn
}

// NewSpawner creates a spawner running at the level 1 interval.
func NewSpawner(rng RandomSource, cfg config.CatchConfig, prog *config.Progression, fps int) *Spawner {
	s := &Spawner{
		rng:       rng,
		cfg:       cfg.Items,
		playfield: cfg.Playfield,
		prog:      prog,
		frameMS:   config.Timing{FPS: fps}.FrameMS(),
	}
	s.Reset()
	return s
}

// Reset restores the base interval and restarts the timer.
func (s *Spawner) Reset() {
	s.SetInterval(s.prog.BaseInterval())
}

// SetInterval changes the spawn cadence and restarts the timer.
func (s *Spawner) SetInterval(ms int) {
	s.intervalMS = ms
	s.elapsedMS = 0
}

// Interval returns the current spawn cadence in milliseconds.
func (s *Spawner) Interval() int {
	return s.intervalMS
}

// Tick advances the timer by one frame and reports whether an item is due.
func (s *Spawner) Tick() bool {
	s.elapsedMS += s.frameMS
	if s.elapsedMS < float64(s.intervalMS) {
		return false
	}
	s.elapsedMS -= float64(s.intervalMS)
	return true
}

// PickKind draws one uniform value and maps it onto the spawn table.
// Ranges are laid out in the order bomb, heart, hourglass, ammo, treasure.
func (s *Spawner) PickKind(level int) Kind {
	r := s.rng.Float64()

	edge := s.prog.BombChance(level)
	if r < edge {
		return KindBomb
	}
	edge += s.cfg.HeartChance
	if r < edge {
		return KindHeart
	}
	edge += s.cfg.HourglassChance
	if r < edge {
		return KindHourglass
	}
	edge += s.cfg.AmmoChance
	if r < edge {
		return KindAmmo
	}
	return KindTreasure
}

// Spawn creates one item for the given level, entering just above the playfield.
func (s *Spawner) Spawn(level int) FallingItem {
	kind := s.PickKind(level)
	scale := s.uniform(s.cfg.MinScale, s.cfg.MaxScale)

	base := kind.baseSize(s.cfg.Sizes)
	w := math.Max(s.cfg.MinSize, math.Floor(base.W*scale))
	h := math.Max(s.cfg.MinSize, math.Floor(base.H*scale))

	centerX := s.uniform(w/2, s.playfield.Width-w/2)

	baseSpeed := s.cfg.BaseSpeed + float64(level)*s.cfg.LevelSpeed
	sizeFactor := s.cfg.SizeSpeedBase + scale*s.cfg.SizeSpeedFactor
	jitter := s.uniform(-s.cfg.Jitter, s.cfg.Jitter)

	sway := s.cfg.Sway
	if kind == KindBomb {
		sway = s.cfg.BombSway
	}

	return FallingItem{
		Kind:    kind,
		X:       centerX - w/2,
		Y:       -h,
		W:       w,
		H:       h,
		VY:      baseSpeed*sizeFactor + jitter,
		Scale:   scale,
		Phase:   s.uniform(0, 2*math.Pi),
		SwayAmp: sway * (0.7 + scale*0.3),
	}
}

// uniform returns a value in [lo, hi).
func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}
