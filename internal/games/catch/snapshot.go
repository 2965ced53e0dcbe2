package catch

import (
	"math"

	"github.com/vovakirdan/catch-treasure/internal/core"
)

// ItemView is the read-only presentation of a falling item.
type ItemView struct {
	Kind  Kind
	Box   core.Box
	Scale float64
}

// ParticleView is the read-only presentation of an effect particle.
type ParticleView struct {
	Kind   ParticleKind
	X, Y   float64
	Radius float64
	Color  core.Color
	Alpha  float64
}

// Snapshot is a copy of everything the presentation layer may draw or play.
// Mutating it has no effect on the game.
type Snapshot struct {
	Tick       int
	Session    Session
	IntervalMS int
	SlowFactor float64 // Fall-speed factor the next tick will use

	Paddle      core.Box
	Items       []ItemView
	Projectiles []core.Box
	Particles   []ParticleView
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	items := make([]ItemView, len(g.items))
	for i := range g.items {
		f := &g.items[i]
		items[i] = ItemView{Kind: f.Kind, Box: f.Box(), Scale: f.Scale}
	}

	projectiles := make([]core.Box, len(g.projectiles))
	for i := range g.projectiles {
		projectiles[i] = g.projectiles[i].Box()
	}

	particles := make([]ParticleView, len(g.particles))
	for i := range g.particles {
		p := &g.particles[i]
		particles[i] = ParticleView{
			Kind:   p.Kind,
			X:      p.X,
			Y:      p.Y,
			Radius: p.Radius,
			Color:  p.Color,
			Alpha:  p.Alpha(),
		}
	}

	return Snapshot{
		Tick:        g.tickCount,
		Session:     g.session,
		IntervalMS:  g.spawner.Interval(),
		SlowFactor:  g.slowMultiplier(),
		Paddle:      g.paddle.Box(),
		Items:       items,
		Projectiles: projectiles,
		Particles:   particles,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	s := snap.Session
	for _, v := range []int{s.Score, s.BestScore, s.Lives, s.Level, s.Ammo, s.SlowTimer, int(s.Phase), snap.IntervalMS} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mix := func(f float64) {
		h = h*31 + math.Float64bits(f)
	}
	mixBox := func(b core.Box) {
		mix(b.X)
		mix(b.Y)
		mix(b.W)
		mix(b.H)
	}

	mixBox(snap.Paddle)
	for _, it := range snap.Items {
		h = h*31 + uint64(it.Kind) //#nosec G115 -- hash computation
		mixBox(it.Box)
		mix(it.Scale)
	}
	for _, p := range snap.Projectiles {
		mixBox(p)
	}
	for _, p := range snap.Particles {
		mix(p.X)
		mix(p.Y)
		mix(p.Radius)
	}

	return h
}
