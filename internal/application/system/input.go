package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Button identifies a logical input the controller cares about.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonJump
	ButtonQuit
)

// String returns the string representation of the button
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonJump:
		return "jump"
	case ButtonQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// KeyMap binds keyboard keys to buttons. Any bound key triggers the button.
type KeyMap map[Button][]ebiten.Key

// DefaultKeyMap is A/D or the arrows to move, Space to jump, Escape to quit.
var DefaultKeyMap = KeyMap{
	ButtonLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	ButtonRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	ButtonJump:  {ebiten.KeySpace},
	ButtonQuit:  {ebiten.KeyEscape},
}

// InputSystem handles player input
type InputSystem struct {
	keys KeyMap
}

// NewInputSystem creates a new input system. A nil key map uses DefaultKeyMap.
func NewInputSystem(keys KeyMap) *InputSystem {
	if keys == nil {
		keys = DefaultKeyMap
	}
	return &InputSystem{keys: keys}
}

// InputState holds the current input state.
// Left and Right are level-triggered; JumpPressed is an edge.
type InputState struct {
	Left        bool
	Right       bool
	JumpPressed bool
	Quit        bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:        s.held(ButtonLeft),
		Right:       s.held(ButtonRight),
		JumpPressed: s.justPressed(ButtonJump),
		Quit:        s.held(ButtonQuit),
	}
}

// held reports whether any key bound to b is down.
func (s *InputSystem) held(b Button) bool {
	for _, k := range s.keys[b] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// justPressed reports whether any key bound to b went down this tick.
func (s *InputSystem) justPressed(b Button) bool {
	for _, k := range s.keys[b] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
