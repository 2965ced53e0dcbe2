package catch

import "math"

// slowMultiplier returns the fall-speed factor for the current tick.
func (g *Game) slowMultiplier() float64 {
	if g.session.SlowTimer > 0 {
		return g.cfg.Effects.SlowFactor
	}
	return 1.0
}

// movePaddle applies held direction input and keeps the paddle on the field.
func (g *Game) movePaddle(left, right bool) {
	dx := 0.0
	if right {
		dx++
	}
	if left {
		dx--
	}
	g.paddle.X += dx * g.cfg.Paddle.Speed
	g.paddle.X = math.Max(0, math.Min(g.paddle.X, g.cfg.Playfield.Width-g.paddle.W))
}

// advance moves every live entity one tick and marks those that leave the field.
func (g *Game) advance(mult float64) {
	pf := g.cfg.Playfield
	margin := pf.ExitMargin

	for i := range g.items {
		f := &g.items[i]
		f.Y += f.VY * mult
		f.Phase += g.cfg.Items.PhaseStep
		f.X += math.Sin(f.Phase) * f.SwayAmp

		if f.Y > pf.Height+margin || f.X+f.W < -margin || f.X > pf.Width+margin {
			f.dead = true
		}
	}

	// Projectiles ignore slow-motion
	for i := range g.projectiles {
		p := &g.projectiles[i]
		p.Y -= p.Speed
		if p.Y+p.H < -g.cfg.Projectile.ExitMargin {
			p.dead = true
		}
	}

	for i := range g.particles {
		advanceParticle(&g.particles[i], g.cfg.Effects.Gravity)
	}
}

// advanceParticle applies one tick of ballistic motion or smoke growth.
func advanceParticle(p *Particle, gravity float64) {
	switch p.Kind {
	case ParticleSpark:
		p.VY += gravity
		p.X += p.VX
		p.Y += p.VY
	case ParticleSmoke:
		t := 1.0 - float64(p.Life)/float64(p.MaxLife)
		p.Radius = p.StartRadius + (p.EndRadius-p.StartRadius)*t
	}

	p.Life--
	if p.Life <= 0 {
		p.dead = true
	}
}

// compact drops every entity marked dead this tick.
func (g *Game) compact() {
	items := g.items[:0]
	for _, f := range g.items {
		if !f.dead {
			items = append(items, f)
		}
	}
	g.items = items

	projectiles := g.projectiles[:0]
	for _, p := range g.projectiles {
		if !p.dead {
			projectiles = append(projectiles, p)
		}
	}
	g.projectiles = projectiles

	particles := g.particles[:0]
	for _, p := range g.particles {
		if !p.dead {
			particles = append(particles, p)
		}
	}
	g.particles = particles
}
