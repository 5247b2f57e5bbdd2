package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys into actions and the game applies them through a
// single transition function.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up arrow - jump
	ActionConfirm        // Enter - pause/resume while playing, restart after game over
	ActionPause          // Toggle pause explicitly
	ActionRestart        // Restart explicitly
	ActionQuit           // Q, Ctrl+C, Escape - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions queued between two frames, in arrival order.
// Order matters: Enter followed by Space is not the same as Space followed by Enter.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 4),
	}
}

// Set queues an action for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
