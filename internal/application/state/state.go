package state

// GameState represents the run state of the game loop
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateQuit
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Next returns the state for the coming tick. A quit request wins over
// everything and Quit is terminal. Losing window focus pauses the game and
// regaining it resumes.
func (s GameState) Next(focused, quit bool) GameState {
	if s == StateQuit || quit {
		return StateQuit
	}
	if !focused {
		return StatePaused
	}
	return StatePlaying
}

// Running reports whether the simulation advances in this state.
func (s GameState) Running() bool {
	return s == StatePlaying
}
