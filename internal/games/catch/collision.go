package catch

import (
	"math"

	"github.com/vovakirdan/catch-treasure/internal/core"
)

// Explosion spark colors, warm yellows and oranges.
var sparkColors = [...]core.Color{core.ColorGold, core.ColorOrange, core.ColorBrightYellow}

// resolveCaptures applies the outcome of every item that reached the paddle.
// An item is caught once its bottom passes the paddle top while its center
// lies within the paddle span widened by the catch tolerance.
func (g *Game) resolveCaptures() {
	top := g.paddle.Y
	tol := g.cfg.Paddle.CatchTolerance
	left := g.paddle.X - tol
	right := g.paddle.X + g.paddle.W + tol

	for i := range g.items {
		f := &g.items[i]
		if f.dead {
			continue
		}
		box := f.Box()
		cx := box.CenterX()
		if box.Bottom() < top || cx < left || cx > right {
			continue
		}

		g.applyCatch(f)
		f.dead = true
	}
}

// applyCatch applies exactly one outcome for a caught item.
func (g *Game) applyCatch(f *FallingItem) {
	s := &g.session
	sc := g.cfg.Scoring

	switch f.Kind {
	case KindTreasure:
		s.Score += sc.TreasureScore
		g.audio.Play(CueTreasure)
	case KindHeart:
		s.Lives = min(s.Lives+1, sc.MaxLives)
		g.audio.Play(CueHeart)
	case KindHourglass:
		// Refreshes rather than stacks
		s.SlowTimer = g.cfg.Effects.SlowFrames(g.fps)
		g.audio.Play(CueSlow)
	case KindAmmo:
		s.Ammo = min(s.Ammo+1, sc.AmmoMax)
	case KindBomb:
		s.Lives--
		g.explode(f.Box().CenterX(), g.paddle.Y-g.cfg.Effects.BombHitLift)
		g.audio.Play(CueBombHit)
	}
}

// resolveShots destroys bombs hit by projectiles. Each projectile destroys
// at most one bomb, the first one it overlaps.
func (g *Game) resolveShots() {
	for pi := range g.projectiles {
		p := &g.projectiles[pi]
		if p.dead {
			continue
		}
		pbox := p.Box()

		for fi := range g.items {
			f := &g.items[fi]
			if f.dead || f.Kind != KindBomb {
				continue
			}
			fbox := f.Box()
			if !pbox.Intersects(fbox) {
				continue
			}

			g.session.Score += g.shotScore(g.paddle.Y - fbox.Bottom())
			p.dead = true
			f.dead = true
			g.explode(fbox.CenterX(), fbox.CenterY())
			g.audio.Play(CueBombShot)
			break
		}
	}
}

// shotScore returns the reward for a bomb shot dist units above the paddle.
// The near-shot window is inclusive at both ends.
func (g *Game) shotScore(dist float64) int {
	sc := g.cfg.Scoring
	if dist >= 0 && dist <= sc.NearShotThreshold {
		return sc.NearShotBonus
	}
	return sc.BombShotScore
}

// checkGameOver ends the run once lives are exhausted.
// It reports whether this call entered game over.
func (g *Game) checkGameOver() bool {
	s := &g.session
	if s.Lives > 0 || s.Phase == PhaseGameOver {
		return false
	}
	s.Lives = 0
	s.Phase = PhaseGameOver
	s.BestScore = max(s.BestScore, s.Score)
	g.audio.Play(CueGameOver)
	return true
}

// explode scatters sparks and a smoke puff around (x, y).
func (g *Game) explode(x, y float64) {
	fx := g.cfg.Effects

	for range fx.SparkCount {
		angle := g.uniform(0, 2*math.Pi)
		speed := g.uniform(fx.SparkSpeedMin, fx.SparkSpeedMax)
		radius := 2 + g.rng.Intn(3)
		life := fx.SparkLifeMin + g.rng.Intn(fx.SparkLifeMax-fx.SparkLifeMin+1)
		color := sparkColors[g.rng.Intn(len(sparkColors))]

		g.particles = append(g.particles, Particle{
			Kind:    ParticleSpark,
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Radius:  float64(radius),
			Color:   color,
			Life:    life,
			MaxLife: life,
		})
	}

	g.particles = append(g.particles, Particle{
		Kind:        ParticleSmoke,
		X:           x,
		Y:           y,
		Radius:      fx.SmokeStart,
		Life:        fx.SmokeLife,
		MaxLife:     fx.SmokeLife,
		StartRadius: fx.SmokeStart,
		EndRadius:   fx.SmokeEnd,
	})
}
