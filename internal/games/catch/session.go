package catch

// Phase is the run state of a session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session holds the scoring state of a run.
// Level is always derived from Score by the level controller.
type Session struct {
	Score     int
	BestScore int // Survives reset for the lifetime of the process
	Lives     int
	Level     int
	Ammo      int
	SlowTimer int // Remaining slow-motion ticks
	Phase     Phase
}

// newSession returns a fresh session carrying over the best score.
func newSession(startLives, best int) Session {
	return Session{
		BestScore: best,
		Lives:     startLives,
		Level:     1,
		Phase:     PhaseRunning,
	}
}

// togglePause flips between running and paused. Game over is unaffected.
func (s *Session) togglePause() {
	switch s.Phase {
	case PhaseRunning:
		s.Phase = PhasePaused
	case PhasePaused:
		s.Phase = PhaseRunning
	case PhaseGameOver:
	}
}

// Running reports whether the simulation advances this tick.
func (s *Session) Running() bool {
	return s.Phase == PhaseRunning
}
