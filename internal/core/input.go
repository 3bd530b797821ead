package core

// Action represents a semantic game action, abstracted from physical key presses.
// Key maps in each front end translate their key identifiers into actions.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, A
	ActionRight         // Right arrow, D
	ActionDrop          // Down arrow, S - fast drop while held
	ActionRotate        // Up arrow, W - rotate once per press
	ActionQuit          // Q, Ctrl+C, Escape
	ActionHelp          // ? - toggle key help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionRotate:
		return "Rotate"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
