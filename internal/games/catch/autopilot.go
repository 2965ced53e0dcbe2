package catch

import (
	"math"

	"github.com/vovakirdan/catch-treasure/internal/core"
)

// dangerZone is how far above the paddle a bomb starts to matter to the autopilot.
const dangerZone = 260.0

// Autopilot plays the game from snapshots alone. It chases the lowest
// pickup, shoots bombs heading for the paddle and dodges when out of ammo.
type Autopilot struct {
	Tolerance float64 // Extra catch margin on each side of the paddle
}

// NewAutopilot creates an autopilot using the paddle's catch tolerance.
func NewAutopilot(tolerance float64) *Autopilot {
	return &Autopilot{Tolerance: tolerance}
}

// Decide returns the input for the next tick.
func (a *Autopilot) Decide(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if snap.Session.Phase == PhaseGameOver {
		return in
	}

	paddle := snap.Paddle
	left := paddle.Left() - a.Tolerance
	right := paddle.Right() + a.Tolerance

	if bomb, ok := a.threat(snap, left, right); ok {
		// Only shoot when the lane above the paddle center hits the bomb
		lane := paddle.CenterX()
		if snap.Session.Ammo > 0 && lane > bomb.Left() && lane < bomb.Right() && len(snap.Projectiles) == 0 {
			in.Set(core.ActionShoot)
			return in
		}
		if bomb.CenterX() < paddle.CenterX() {
			in.Set(core.ActionMoveRight)
		} else {
			in.Set(core.ActionMoveLeft)
		}
		return in
	}

	target, ok := a.target(snap)
	if !ok {
		return in
	}
	dx := target.CenterX() - paddle.CenterX()
	switch {
	case dx > paddle.W/4:
		in.Set(core.ActionMoveRight)
	case dx < -paddle.W/4:
		in.Set(core.ActionMoveLeft)
	}
	return in
}

// threat returns the lowest bomb that would land on the paddle.
func (a *Autopilot) threat(snap Snapshot, left, right float64) (core.Box, bool) {
	var found core.Box
	ok := false
	for _, it := range snap.Items {
		if it.Kind != KindBomb {
			continue
		}
		b := it.Box
		if b.Bottom() < snap.Paddle.Top()-dangerZone {
			continue
		}
		if b.CenterX() < left || b.CenterX() > right {
			continue
		}
		if !ok || b.Bottom() > found.Bottom() {
			found, ok = b, true
		}
	}
	return found, ok
}

// target returns the lowest pickup still above the paddle.
func (a *Autopilot) target(snap Snapshot) (core.Box, bool) {
	var found core.Box
	best := math.Inf(-1)
	for _, it := range snap.Items {
		if it.Kind == KindBomb || it.Box.Bottom() > snap.Paddle.Bottom() {
			continue
		}
		if it.Box.Bottom() > best {
			found, best = it.Box, it.Box.Bottom()
		}
	}
	return found, !math.IsInf(best, -1)
}

// Summary describes a finished headless run.
type Summary struct {
	Ticks     int
	Score     int
	BestScore int
	Level     int
	Lives     int
	LevelUps  int
	GameOver  bool
}

// Simulate steps g under the autopilot until game over or maxTicks.
// onStep, if set, observes every tick result.
func Simulate(g *Game, pilot *Autopilot, maxTicks int, onStep func(core.StepResult)) Summary {
	var sum Summary
	for sum.Ticks < maxTicks {
		res := g.Step(pilot.Decide(g.Snapshot()))
		sum.Ticks++
		if res.LeveledUp {
			sum.LevelUps++
		}
		if onStep != nil {
			onStep(res)
		}
		if res.State.GameOver {
			break
		}
	}

	st := g.State()
	sum.Score = st.Score
	sum.BestScore = st.BestScore
	sum.Level = st.Level
	sum.Lives = st.Lives
	sum.GameOver = st.GameOver
	return sum
}
