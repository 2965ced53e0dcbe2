package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catch-treasure/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Shoot      key.Binding
	Pause      key.Binding
	Reset      key.Binding
	Fullscreen key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Shoot, k.Pause, k.Reset, k.Fullscreen, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Shoot},
		{k.Pause, k.Reset, k.Fullscreen, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Shoot: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "shoot"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Shoot):
		return core.ActionShoot
	case key.Matches(msg, k.Pause):
		return core.ActionTogglePause
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Fullscreen):
		return core.ActionToggleFullscreen
	}
	return core.ActionNone
}

// isHeld reports whether the action is continuous rather than one-shot.
// Terminals deliver key repeats, not releases, so held actions stay
// active for a short window after each press.
func isHeld(a core.Action) bool {
	return a == core.ActionMoveLeft || a == core.ActionMoveRight
}

// opposite returns the movement action cancelled by a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionMoveLeft:
		return core.ActionMoveRight
	case core.ActionMoveRight:
		return core.ActionMoveLeft
	default:
		return core.ActionNone
	}
}
