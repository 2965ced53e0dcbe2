package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone             Action = iota
	ActionMoveLeft                // Left arrow, A - move paddle left
	ActionMoveRight               // Right arrow, D - move paddle right
	ActionShoot                   // Space - fire a projectile
	ActionTogglePause             // P - pause/unpause
	ActionReset                   // R - start a fresh session
	ActionToggleFullscreen        // F - toggle the alternate screen
	ActionQuit                    // Esc, Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionShoot:
		return "Shoot"
	case ActionTogglePause:
		return "TogglePause"
	case ActionReset:
		return "Reset"
	case ActionToggleFullscreen:
		return "ToggleFullscreen"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// AffectsSimulation reports whether the action is consumed by the game core.
// Fullscreen and quit are handled by the platform.
func (a Action) AffectsSimulation() bool {
	switch a {
	case ActionMoveLeft, ActionMoveRight, ActionShoot, ActionTogglePause, ActionReset:
		return true
	default:
		return false
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
