package core

// Action represents a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // S - start a round
	ActionReset             // R - stop and clear the arena
	ActionDebug             // D - toggle the debug overlay
	ActionPause             // P - freeze the simulation clock
	ActionTable             // Tab - toggle the player table
	ActionScreenshot        // Ctrl+S - save the current buffer
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionDebug:
		return "Debug"
	case ActionPause:
		return "Pause"
	case ActionTable:
		return "Table"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered since the last tick.
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

// Empty returns true if no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}
