package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move selection or aim up
	ActionDown           // S, Down arrow - move selection or aim down
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionConfirm        // Enter, Space - confirm the current selection
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionMute           // M - toggle sound (handled by the platform layer)
	ActionDigit1         // 1 - pick answer slot 1 directly
	ActionDigit2         // 2 - pick answer slot 2 directly
	ActionDigit3         // 3 - pick answer slot 3 directly
	ActionDigit4         // 4 - pick answer slot 4 directly
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	case ActionDigit1:
		return "Digit1"
	case ActionDigit2:
		return "Digit2"
	case ActionDigit3:
		return "Digit3"
	case ActionDigit4:
		return "Digit4"
	default:
		return "Unknown"
	}
}

// Digit returns the 1-based slot index for digit actions, or 0 for any other
// action.
func (a Action) Digit() int {
	switch a {
	case ActionDigit1:
		return 1
	case ActionDigit2:
		return 2
	case ActionDigit3:
		return 3
	case ActionDigit4:
		return 4
	default:
		return 0
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// Digit returns the 1-based slot index of the first digit action present in
// this frame, or 0 if none was triggered. Checked in slot order so two digits
// in one frame resolve consistently.
func (f InputFrame) Digit() int {
	for _, a := range []Action{ActionDigit1, ActionDigit2, ActionDigit3, ActionDigit4} {
		if f.Has(a) {
			return a.Digit()
		}
	}
	return 0
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
