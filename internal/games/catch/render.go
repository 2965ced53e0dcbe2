package catch

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/vovakirdan/catch-treasure/internal/config"
	"github.com/vovakirdan/catch-treasure/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar     = '█'
	ProjectileChar = '^'
	ShadowChar     = '_'
	SparkChar      = '*'
	EmberChar      = '·'
	SmokeChar      = '░'
	StarChar       = '.'
	HeartChar      = '♥'
)

// Starfield parameters. The seed is fixed so the sky never changes.
const (
	starSeed  = 42
	starCount = 350
)

// Shadows shrink and fade as items rise this far above the ground.
const shadowFalloff = 450.0

// star is a decorative background point in world units.
type star struct {
	X, Y   float64
	Bright bool
}

// newStarfield scatters the background stars across the playfield.
func newStarfield(pf config.Playfield) []star {
	rng := rand.New(rand.NewSource(starSeed)) //#nosec G404 -- decorative
	w, h := max(1, int(pf.Width)), max(1, int(pf.Height))

	stars := make([]star, starCount)
	for i := range stars {
		x := rng.Intn(w)
		y := rng.Intn(h)
		alpha := 110 + rng.Intn(101)
		stars[i] = star{X: float64(x), Y: float64(y), Bright: alpha >= 160}
	}
	return stars
}

// Glyph returns the character used to draw an item kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindTreasure:
		return '$'
	case KindBomb:
		return '@'
	case KindHeart:
		return HeartChar
	case KindHourglass:
		return '⧖'
	case KindAmmo:
		return '!'
	default:
		return '?'
	}
}

// Color returns the color used to draw an item kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindTreasure:
		return core.ColorGold
	case KindBomb:
		return core.ColorGray
	case KindHeart:
		return core.ColorPink
	case KindHourglass:
		return core.ColorBrightCyan
	case KindAmmo:
		return core.ColorBrightBlue
	default:
		return core.ColorDefault
	}
}

// projection maps world units onto the character grid.
type projection struct {
	sx, sy float64 // Cells per world unit
}

func newProjection(pf config.Playfield, dst *core.Screen) projection {
	return projection{
		sx: float64(dst.Width()) / pf.Width,
		sy: float64(dst.Height()) / pf.Height,
	}
}

func (p projection) col(x float64) int {
	return int(math.Floor(x * p.sx))
}

func (p projection) row(y float64) int {
	return int(math.Floor(y * p.sy))
}

// rect returns the cells covered by a box, at least one cell.
func (p projection) rect(b core.Box) core.Rect {
	x0, y0 := p.col(b.X), p.row(b.Y)
	x1 := max(x0+1, int(math.Ceil(b.Right()*p.sx)))
	y1 := max(y0+1, int(math.Ceil(b.Bottom()*p.sy)))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	proj := newProjection(g.cfg.Playfield, dst)

	g.renderStars(dst, proj)
	g.renderShadows(dst, proj)

	for i := range g.items {
		f := &g.items[i]
		dst.DrawRectColored(proj.rect(f.Box()), f.Kind.Glyph(), f.Kind.Color())
	}

	for i := range g.projectiles {
		b := g.projectiles[i].Box()
		dst.SetColored(proj.col(b.CenterX()), proj.row(b.CenterY()), ProjectileChar, core.ColorBrightWhite)
	}

	dst.DrawRectColored(proj.rect(g.paddle.Box()), PaddleChar, core.ColorBlue)

	g.renderParticles(dst, proj)

	switch g.session.Phase {
	case PhasePaused:
		g.drawCenteredMessage(dst, "Paused", "Press P to resume", core.ColorBrightBlue)
	case PhaseGameOver:
		g.drawCenteredMessage(dst, "Game Over",
			fmt.Sprintf("Score: %d  Best: %d", g.session.Score, g.session.BestScore),
			core.ColorBrightRed)
		dst.DrawTextCenteredColored(dst.Height()/2+3, "Press R to restart, Esc to quit", core.ColorGray)
	case PhaseRunning:
	}

	g.renderHUD(dst)
}

// renderStars draws the fixed background sky.
func (g *Game) renderStars(dst *core.Screen, proj projection) {
	for _, s := range g.stars {
		color := core.ColorDarkGray
		if s.Bright {
			color = core.ColorStar
		}
		dst.SetColored(proj.col(s.X), proj.row(s.Y), StarChar, color)
	}
}

// renderShadows draws ground shadows that shrink as their caster rises.
func (g *Game) renderShadows(dst *core.Screen, proj projection) {
	ground := g.cfg.Playfield.GroundY()
	row := min(proj.row(ground), dst.Height()-1)

	draw := func(cx, bottom, baseW float64) {
		h := math.Max(0, ground-bottom)
		w := core.ClampF(baseW*(1-h/shadowFalloff), baseW*0.35, baseW)
		w = math.Max(14, w)

		cells := max(1, int(math.Round(w*proj.sx)))
		dst.DrawTextColored(proj.col(cx)-cells/2, row, strings.Repeat(string(ShadowChar), cells), core.ColorDarkGray)
	}

	p := g.paddle.Box()
	draw(p.CenterX(), p.Bottom(), p.W*0.9)
	for i := range g.items {
		b := g.items[i].Box()
		draw(b.CenterX(), b.Bottom(), math.Max(20, b.W))
	}
	for i := range g.projectiles {
		b := g.projectiles[i].Box()
		draw(b.CenterX(), b.Bottom(), 18)
	}
}

// renderParticles draws smoke first so sparks stay visible on top.
func (g *Game) renderParticles(dst *core.Screen, proj projection) {
	for i := range g.particles {
		p := &g.particles[i]
		if p.Kind != ParticleSmoke {
			continue
		}
		color := core.ColorGray
		if p.Alpha() < 0.5 {
			color = core.ColorDarkGray
		}
		area := proj.rect(core.BoxAround(p.X, p.Y, p.Radius*2, p.Radius*2))
		for y := area.Y; y < area.Bottom(); y++ {
			for x := area.X; x < area.Right(); x++ {
				// Distance from the cell center in world units
				wx := (float64(x) + 0.5) / proj.sx
				wy := (float64(y) + 0.5) / proj.sy
				if math.Hypot(wx-p.X, wy-p.Y) <= p.Radius {
					dst.SetColored(x, y, SmokeChar, color)
				}
			}
		}
	}

	for i := range g.particles {
		p := &g.particles[i]
		if p.Kind != ParticleSpark {
			continue
		}
		ch := SparkChar
		if p.Alpha() < 0.5 {
			ch = EmberChar
		}
		dst.SetColored(proj.col(p.X), proj.row(p.Y), ch, p.Color)
	}
}

// renderHUD draws score, ammo, level, lives and the slow-motion indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session

	scoreText := fmt.Sprintf("Score: %d", s.Score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorGold)
	ammoText := fmt.Sprintf("Ammo: %d/%d", s.Ammo, g.cfg.Scoring.AmmoMax)
	dst.DrawTextColored(len(scoreText)+4, 0, ammoText, core.ColorBrightCyan)

	dst.DrawTextCenteredColored(0, fmt.Sprintf("Level: %d", s.Level), core.ColorBrightBlue)

	maxLives := g.cfg.Scoring.MaxLives
	x0 := dst.Width() - maxLives*2
	for i := range maxLives {
		color := core.ColorGray
		if i < s.Lives {
			color = core.ColorRed
		}
		dst.SetColored(x0+i*2, 0, HeartChar, color)
	}

	if s.SlowTimer > 0 {
		dst.DrawTextCenteredColored(1, "SLOW", core.ColorBrightCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, color core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h-boxH)/2 - 1

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCenteredColored(boxY+1, title, color)
	dst.DrawTextCenteredColored(boxY+3, subtitle, core.ColorGold)
}
