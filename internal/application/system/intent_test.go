package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntentsFor(t *testing.T) {
	tests := []struct {
		name  string
		input InputState
		want  []Intent
	}{
		{"no input", InputState{}, []Intent{}},
		{"left", InputState{Left: true}, []Intent{MoveIntent{Direction: -1}}},
		{"right", InputState{Right: true}, []Intent{MoveIntent{Direction: 1}}},
		{
			"both directions are kept",
			InputState{Left: true, Right: true},
			[]Intent{MoveIntent{Direction: -1}, MoveIntent{Direction: 1}},
		},
		{"jump", InputState{JumpPressed: true}, []Intent{ButtonIntent{Button: ButtonJump}}},
		{
			"everything in order",
			InputState{Left: true, Right: true, JumpPressed: true, Quit: true},
			[]Intent{
				MoveIntent{Direction: -1},
				MoveIntent{Direction: 1},
				ButtonIntent{Button: ButtonJump},
				ButtonIntent{Button: ButtonQuit},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntentsFor(tt.input))
		})
	}
}

func TestIntentImplementations(t *testing.T) {
	var intents []Intent
	intents = append(intents, MoveIntent{Direction: 1}, ButtonIntent{Button: ButtonQuit})

	assert.Len(t, intents, 2)
}
