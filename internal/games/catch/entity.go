package catch

import (
	"github.com/vovakirdan/catch-treasure/internal/config"
	"github.com/vovakirdan/catch-treasure/internal/core"
)

// Kind identifies what a falling item does when it is caught.
type Kind int

const (
	KindTreasure Kind = iota
	KindBomb
	KindHeart
	KindHourglass
	KindAmmo
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindTreasure:
		return "treasure"
	case KindBomb:
		return "bomb"
	case KindHeart:
		return "heart"
	case KindHourglass:
		return "hourglass"
	case KindAmmo:
		return "ammo"
	default:
		return "unknown"
	}
}

// baseSize returns the unscaled art size of a kind.
func (k Kind) baseSize(sizes config.ItemSizes) config.Size {
	switch k {
	case KindTreasure:
		return sizes.Treasure
	case KindBomb:
		return sizes.Bomb
	case KindHeart:
		return sizes.Heart
	case KindHourglass:
		return sizes.Hourglass
	case KindAmmo:
		return sizes.Ammo
	default:
		return sizes.Treasure
	}
}

// FallingItem is a pickup descending through the playfield.
// X and Y locate the top-left corner in world units.
type FallingItem struct {
	Kind    Kind
	X, Y    float64
	W, H    float64
	VY      float64 // Fall speed per tick before slow-motion
	Scale   float64 // Size factor drawn at spawn
	Phase   float64 // Sway oscillator phase in radians
	SwayAmp float64 // Horizontal sway amplitude per tick

	dead bool
}

// Box returns the item's bounding box.
func (f *FallingItem) Box() core.Box {
	return core.Box{X: f.X, Y: f.Y, W: f.W, H: f.H}
}

// Projectile is a player-fired shot travelling straight up.
type Projectile struct {
	X, Y  float64 // Top-left corner
	W, H  float64
	Speed float64 // Upward distance per tick

	dead bool
}

// Box returns the projectile's bounding box.
func (p *Projectile) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// ParticleKind distinguishes explosion debris from the smoke puff.
type ParticleKind int

const (
	ParticleSpark ParticleKind = iota
	ParticleSmoke
)

// Particle is a short-lived explosion effect with no gameplay impact.
// X and Y locate the particle's center.
type Particle struct {
	Kind    ParticleKind
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Color   core.Color
	Life    int
	MaxLife int

	// Smoke grows from StartRadius to EndRadius over its life
	StartRadius float64
	EndRadius   float64

	dead bool
}

// Alpha returns the remaining opacity in [0, 1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(float64(p.Life)/float64(p.MaxLife), 0, 1)
}

// Paddle is the player-controlled catcher. X and Y locate its top-left corner.
type Paddle struct {
	X, Y float64
	W, H float64
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// newPaddle places a paddle centered horizontally with its bottom above the ground line.
func newPaddle(pf config.Playfield, pc config.Paddle) Paddle {
	return Paddle{
		X: pf.Width/2 - pc.Width/2,
		Y: pf.GroundY() - pc.GroundGap - pc.Height,
		W: pc.Width,
		H: pc.Height,
	}
}
