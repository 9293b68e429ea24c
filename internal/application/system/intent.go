package system

// Intent represents an action that the player wants to perform this tick
type Intent interface {
	isIntent()
}

// MoveIntent represents a held movement input
type MoveIntent struct {
	Direction int // -1 for left, 1 for right
}

func (MoveIntent) isIntent() {}

// ButtonIntent represents a discrete button press
type ButtonIntent struct {
	Button Button
}

func (ButtonIntent) isIntent() {}

// IntentsFor expands an input snapshot into intents.
// Held directions come first (left before right, both may be present), then
// the jump edge, then quit.
func IntentsFor(input InputState) []Intent {
	intents := make([]Intent, 0, 4)
	if input.Left {
		intents = append(intents, MoveIntent{Direction: -1})
	}
	if input.Right {
		intents = append(intents, MoveIntent{Direction: 1})
	}
	if input.JumpPressed {
		intents = append(intents, ButtonIntent{Button: ButtonJump})
	}
	if input.Quit {
		intents = append(intents, ButtonIntent{Button: ButtonQuit})
	}
	return intents
}
