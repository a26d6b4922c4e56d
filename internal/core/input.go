package core

// Action represents a semantic lab action, abstracted from physical key presses.
// The lab model reacts to intents rather than raw keys, so the same model runs
// behind a local terminal and an SSH session.
type Action int

const (
	ActionNone       Action = iota
	ActionPrevField         // Up arrow, K - select previous parameter
	ActionNextField         // Down arrow, J, Tab - select next parameter
	ActionIncrease          // Right arrow, L, + - increase selected parameter
	ActionDecrease          // Left arrow, H, - - decrease selected parameter
	ActionFire              // Space, F - animate the shot
	ActionSave              // S - store the shot
	ActionReset             // R - restore launch defaults
	ActionQuery             // / - focus the point query inputs
	ActionScreenshot        // Ctrl+S - write the plot to a file
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrevField:
		return "PrevField"
	case ActionNextField:
		return "NextField"
	case ActionIncrease:
		return "Increase"
	case ActionDecrease:
		return "Decrease"
	case ActionFire:
		return "Fire"
	case ActionSave:
		return "Save"
	case ActionReset:
		return "Reset"
	case ActionQuery:
		return "Query"
	case ActionScreenshot:
		return "Screenshot"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
