// Package catch implements Catch the Treasure: a paddle catches falling
// treasure and pickups, shoots bombs, and survives an ever faster stream
// of items. The simulation runs in world units and knows nothing about
// terminals, timers or sound devices.
package catch

import (
	"math/rand"

	"github.com/vovakirdan/catch-treasure/internal/config"
	"github.com/vovakirdan/catch-treasure/internal/core"
)

// Game implements the Catch the Treasure simulation.
type Game struct {
	cfg     config.CatchConfig
	runtime core.RuntimeConfig
	fps     int

	// Collaborators
	rng       RandomSource
	customRNG bool
	audio     AudioSink

	prog    *config.Progression
	spawner *Spawner
	session Session
	paddle  Paddle

	// Active entities, each owned by exactly one collection
	items       []FallingItem
	projectiles []Projectile
	particles   []Particle

	tickCount int
	stars     []star
}

// Option configures a Game.
type Option func(*Game)

// WithAudio routes sound cues to the given sink.
func WithAudio(a AudioSink) Option {
	return func(g *Game) {
		if a != nil {
			g.audio = a
		}
	}
}

// WithRandom injects the random source, overriding the runtime seed.
func WithRandom(r RandomSource) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
			g.customRNG = true
		}
	}
}

// New creates a game for the given configuration. Call Reset before stepping.
func New(cfg config.CatchConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		audio: nopSink{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.stars = newStarfield(cfg.Playfield)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "catch"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Catch the Treasure"
}

// Reset starts a new session for the given runtime. The best score is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.fps = g.cfg.Timing.FPS
	if runtime.TickRate > 0 {
		g.fps = runtime.TickRate
	}

	if !g.customRNG {
		g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	}

	g.prog = config.NewProgression(g.cfg.Progression, g.cfg.Scoring.LevelUpEvery)
	g.spawner = NewSpawner(g.rng, g.cfg, g.prog, g.fps)
	g.resetSession()
}

// resetSession restores the starting state, clears the field and restarts spawning.
func (g *Game) resetSession() {
	g.session = newSession(g.cfg.Scoring.StartLives, g.session.BestScore)
	g.paddle = newPaddle(g.cfg.Playfield, g.cfg.Paddle)
	g.items = g.items[:0]
	g.projectiles = g.projectiles[:0]
	g.particles = g.particles[:0]
	g.spawner.Reset()
	g.tickCount = 0
}

// Step advances the game by one tick.
// Order: session input, shooting, spawning, paddle, motion, collisions,
// slow-motion countdown, level, then removal of dead entities.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		g.resetSession()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionTogglePause) {
		g.session.togglePause()
	}

	// Paused and game over freeze the simulation
	if !g.session.Running() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if in.Has(core.ActionShoot) {
		g.Shoot()
	}

	if g.spawner.Tick() {
		g.items = append(g.items, g.spawner.Spawn(g.session.Level))
	}

	g.movePaddle(in.Has(core.ActionMoveLeft), in.Has(core.ActionMoveRight))
	g.advance(g.slowMultiplier())

	g.resolveCaptures()
	g.resolveShots()
	ended := g.checkGameOver()

	if g.session.SlowTimer > 0 {
		g.session.SlowTimer--
	}

	leveledUp := g.updateLevel()
	g.compact()

	return core.StepResult{
		State:     g.State(),
		LeveledUp: leveledUp,
		Ended:     ended,
	}
}

// Shoot fires a projectile from the paddle if the run is live and ammo remains.
// It reports whether a projectile was created.
func (g *Game) Shoot() bool {
	if !g.session.Running() || g.session.Ammo <= 0 {
		return false
	}
	g.session.Ammo--

	pc := g.cfg.Projectile
	box := core.BoxAround(g.paddle.X+g.paddle.W/2, g.paddle.Y-pc.SpawnGap, pc.Width, pc.Height)
	g.projectiles = append(g.projectiles, Projectile{
		X:     box.X,
		Y:     box.Y,
		W:     box.W,
		H:     box.H,
		Speed: pc.Speed,
	})
	g.audio.Play(CueShoot)
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score,
		BestScore: g.session.BestScore,
		Level:     g.session.Level,
		Lives:     g.session.Lives,
		GameOver:  g.session.Phase == PhaseGameOver,
		Paused:    g.session.Phase == PhasePaused,
		Ticks:     g.tickCount,
	}
}

// Session returns a copy of the scoring state.
func (g *Game) Session() Session {
	return g.session
}

// SpawnInterval returns the current spawn cadence in milliseconds.
func (g *Game) SpawnInterval() int {
	return g.spawner.Interval()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.CatchConfig {
	return g.cfg
}

// uniform returns a value in [lo, hi) from the game's random source.
func (g *Game) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rng.Float64()
}
