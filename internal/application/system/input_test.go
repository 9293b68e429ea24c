package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButton_String(t *testing.T) {
	tests := []struct {
		button Button
		want   string
	}{
		{ButtonLeft, "left"},
		{ButtonRight, "right"},
		{ButtonJump, "jump"},
		{ButtonQuit, "quit"},
		{Button(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.button.String())
		})
	}
}

func TestDefaultKeyMap(t *testing.T) {
	assert.Equal(t, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, DefaultKeyMap[ButtonLeft])
	assert.Equal(t, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, DefaultKeyMap[ButtonRight])
	assert.Equal(t, []ebiten.Key{ebiten.KeySpace}, DefaultKeyMap[ButtonJump])
	assert.Equal(t, []ebiten.Key{ebiten.KeyEscape}, DefaultKeyMap[ButtonQuit])
}

func TestNewInputSystem(t *testing.T) {
	t.Run("nil map uses defaults", func(t *testing.T) {
		s := NewInputSystem(nil)

		require.NotNil(t, s)
		assert.Equal(t, DefaultKeyMap, s.keys)
	})

	t.Run("custom map is kept", func(t *testing.T) {
		keys := KeyMap{ButtonJump: {ebiten.KeyW}}
		s := NewInputSystem(keys)

		assert.Equal(t, keys, s.keys)
	})
}

func TestInputSystem_UnboundButton(t *testing.T) {
	s := NewInputSystem(KeyMap{})

	assert.False(t, s.held(ButtonLeft))
	assert.False(t, s.justPressed(ButtonJump))
}
