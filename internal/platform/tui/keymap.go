package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hazard-arena/internal/core"
)

// KeyMap defines the key bindings of the arena viewer.
type KeyMap struct {
	Start      key.Binding
	Reset      key.Binding
	Debug      key.Binding
	Pause      key.Binding
	Table      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Reset, k.Pause, k.Debug, k.Table, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Reset, k.Pause},
		{k.Debug, k.Table, k.Screenshot},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "start"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "debug"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Table: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "players"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a viewer action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Debug):
		return core.ActionDebug
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Table):
		return core.ActionTable
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	}
	return core.ActionNone
}

// MapKeyToFrame records the action of a key message in an input frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := k.MapKey(msg)
	if action == core.ActionQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return false
}
