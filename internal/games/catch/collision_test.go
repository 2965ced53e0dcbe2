package catch

import (
	"math/rand"
	"testing"
)

func TestCatchOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		kind      Kind
		lives     int
		ammo      int
		wantScore int
		wantLives int
		wantAmmo  int
		wantSlow  int
		wantCue   Cue
	}{
		{"treasure scores", KindTreasure, 3, 0, 1, 3, 0, 0, CueTreasure},
		{"heart adds life", KindHeart, 3, 0, 0, 4, 0, 0, CueHeart},
		{"heart clamps at max", KindHeart, 5, 0, 0, 5, 0, 0, CueHeart},
		{"hourglass slows", KindHourglass, 3, 0, 0, 3, 0, 720, CueSlow},
		{"ammo adds shot", KindAmmo, 3, 1, 0, 3, 2, 0, ""},
		{"ammo clamps at max", KindAmmo, 3, 3, 0, 3, 3, 0, ""},
		{"bomb costs life", KindBomb, 3, 0, 0, 2, 0, 0, CueBombHit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &cueRecorder{}
			g := newTestGame(WithAudio(rec))
			g.session.Lives = tc.lives
			g.session.Ammo = tc.ammo

			placeOnPaddle(g, tc.kind)
			g.resolveCaptures()

			s := g.session
			if s.Score != tc.wantScore || s.Lives != tc.wantLives || s.Ammo != tc.wantAmmo || s.SlowTimer != tc.wantSlow {
				t.Errorf("session = %+v, expected score %d lives %d ammo %d slow %d",
					s, tc.wantScore, tc.wantLives, tc.wantAmmo, tc.wantSlow)
			}
			if !g.items[0].dead {
				t.Error("caught item should be removed")
			}

			if tc.wantCue == "" {
				if len(rec.cues) != 0 {
					t.Errorf("expected no cue, got %v", rec.cues)
				}
			} else if len(rec.cues) != 1 || rec.cues[0] != tc.wantCue {
				t.Errorf("cues = %v, expected [%s]", rec.cues, tc.wantCue)
			}
		})
	}
}

func TestBombCatchExplodesAbovePaddle(t *testing.T) {
	g := newTestGame()
	placeItem(g, KindBomb, 600, g.paddle.Y+3)
	g.resolveCaptures()

	if len(g.particles) != 21 {
		t.Fatalf("expected 20 sparks and 1 smoke, got %d particles", len(g.particles))
	}
	for _, p := range g.particles {
		if p.X != 600 || p.Y != g.paddle.Y-8 {
			t.Fatalf("explosion at (%v, %v), expected (600, %v)", p.X, p.Y, g.paddle.Y-8)
		}
	}
	if g.particles[20].Kind != ParticleSmoke {
		t.Error("last particle should be the smoke puff")
	}
}

func TestCaptureBounds(t *testing.T) {
	tests := []struct {
		name   string
		dx     float64 // Item center relative to the paddle edge
		edge   string
		bottom float64 // Item bottom relative to the paddle top
		caught bool
	}{
		{"center of paddle", 0, "center", 0, true},
		{"deep below top", 0, "center", 30, true},
		{"just above top", 0, "center", -0.5, false},
		{"left tolerance edge", -6, "left", 0, true},
		{"past left tolerance", -6.5, "left", 0, false},
		{"right tolerance edge", 6, "right", 0, true},
		{"past right tolerance", 6.5, "right", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame()
			var x float64
			switch tc.edge {
			case "left":
				x = g.paddle.X
			case "right":
				x = g.paddle.X + g.paddle.W
			default:
				x = g.paddle.X + g.paddle.W/2
			}

			placeItem(g, KindTreasure, x+tc.dx, g.paddle.Y+tc.bottom)
			g.resolveCaptures()

			if caught := g.session.Score == 1; caught != tc.caught {
				t.Errorf("caught = %v, expected %v", caught, tc.caught)
			}
		})
	}
}

// placeShot puts a bomb with its bottom dist above the paddle top and a
// projectile overlapping it.
func placeShot(g *Game, dist float64) {
	cx := 300.0
	placeItem(g, KindBomb, cx, g.paddle.Y-dist)
	g.projectiles = append(g.projectiles, Projectile{
		X: cx - 5, Y: g.paddle.Y - dist - 10, W: 10, H: 22, Speed: 14,
	})
}

func TestNearShotBoundary(t *testing.T) {
	tests := []struct {
		dist  float64
		score int
	}{
		{0, 10},
		{12, 10},
		{20, 10},
		{20.5, 1},
		{21, 1},
		{200, 1},
		{-4, 1}, // Bomb already below the paddle top
	}

	for _, tc := range tests {
		rec := &cueRecorder{}
		g := newTestGame(WithAudio(rec))
		placeShot(g, tc.dist)

		g.resolveShots()

		if g.session.Score != tc.score {
			t.Errorf("shot at distance %v scored %d, expected %d", tc.dist, g.session.Score, tc.score)
		}
		if !g.items[0].dead || !g.projectiles[0].dead {
			t.Errorf("distance %v: bomb and projectile should both be removed", tc.dist)
		}
		if rec.counted[CueBombShot] != 1 {
			t.Errorf("distance %v: expected one bomb_shot cue", tc.dist)
		}
		if len(g.particles) != 21 {
			t.Errorf("distance %v: expected explosion particles, got %d", tc.dist, len(g.particles))
		}
	}
}

func TestShotExplodesAtBombCenter(t *testing.T) {
	g := newTestGame()
	placeShot(g, 100)
	bomb := g.items[0].Box()

	g.resolveShots()

	if p := g.particles[0]; p.X != bomb.CenterX() || p.Y != bomb.CenterY() {
		t.Errorf("explosion at (%v, %v), expected bomb center (%v, %v)", p.X, p.Y, bomb.CenterX(), bomb.CenterY())
	}
}

func TestProjectileIgnoresNonBombs(t *testing.T) {
	g := newTestGame()
	placeItem(g, KindTreasure, 300, 300)
	g.projectiles = append(g.projectiles, Projectile{X: 295, Y: 270, W: 10, H: 22, Speed: 14})

	g.resolveShots()

	if g.items[0].dead || g.projectiles[0].dead {
		t.Error("projectiles should pass through non-bomb items")
	}
}

func TestProjectileFirstMatchWins(t *testing.T) {
	g := newTestGame()
	placeItem(g, KindBomb, 300, 300)
	placeItem(g, KindBomb, 310, 305)
	g.projectiles = append(g.projectiles, Projectile{X: 300, Y: 270, W: 10, H: 22, Speed: 14})

	g.resolveShots()

	if !g.items[0].dead {
		t.Error("first overlapping bomb should be destroyed")
	}
	if g.items[1].dead {
		t.Error("a projectile destroys at most one bomb")
	}
	if g.session.Score != 1 {
		t.Errorf("score = %d, expected 1", g.session.Score)
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	g := newTestGame()
	placeItem(g, KindBomb, 300, 300)
	// Projectile top sits exactly on the bomb bottom
	g.projectiles = append(g.projectiles, Projectile{X: 295, Y: 300, W: 10, H: 22, Speed: 14})

	g.resolveShots()

	if g.items[0].dead {
		t.Error("boxes that only touch must not collide")
	}
}

func TestCaughtBombCannotBeShot(t *testing.T) {
	g := newTestGame()
	placeOnPaddle(g, KindBomb)
	cx := g.paddle.X + g.paddle.W/2
	g.projectiles = append(g.projectiles, Projectile{X: cx - 5, Y: g.paddle.Y - 20, W: 10, H: 22, Speed: 14})

	g.resolveCaptures()
	g.resolveShots()

	if g.session.Lives != 2 || g.session.Score != 0 {
		t.Errorf("bomb should be caught, not shot: %+v", g.session)
	}
	if g.projectiles[0].dead {
		t.Error("projectile should survive when its bomb was already caught")
	}
}

func TestClampInvariantUnderRandomCatches(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := newTestGame()
	kinds := []Kind{KindTreasure, KindHeart, KindHourglass, KindAmmo, KindBomb}

	for range 2000 {
		placeOnPaddle(g, kinds[rng.Intn(len(kinds))])
		g.resolveCaptures()
		g.checkGameOver()
		g.compact()

		s := g.session
		if s.Lives < 0 || s.Lives > 5 {
			t.Fatalf("lives out of range: %d", s.Lives)
		}
		if s.Ammo < 0 || s.Ammo > 3 {
			t.Fatalf("ammo out of range: %d", s.Ammo)
		}
		if s.Phase == PhaseGameOver {
			g.resetSession()
		}
	}
}
