package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/younwookim/platformer/internal/domain/entity"
)

func createTestData() ReplayData {
	return ReplayData{
		Version:   Version,
		Scene:     "showcase",
		StartTime: "2024-01-01T00:00:00Z",
		Frames: []FrameInput{
			{F: 0, L: true, DT: 1.0 / 60.0},
			{F: 1, R: true, JP: true, DT: 1.0 / 60.0},
			{F: 2, Q: true, DT: 0.0123},
		},
		Checkpoints: []Checkpoint{
			{
				F:      1,
				Body:   entity.Body{X: 0.1 + 0.2, Y: 45.833333333333336, Width: 29, Height: 55, SpeedX: -1e-300, SpeedY: 550},
				Action: "fall",
			},
		},
	}
}

func TestFrameInput_JSONOmitsIdleButtons(t *testing.T) {
	out, err := json.Marshal(FrameInput{F: 3, DT: 0.5})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"dt":0.5}`, string(out))
}

func TestBody_MsgpackRoundTripIsExact(t *testing.T) {
	body := createTestData().Checkpoints[0].Body

	raw, err := msgpack.Marshal(body)
	require.NoError(t, err)

	var decoded entity.Body
	require.NoError(t, msgpack.Unmarshal(raw, &decoded))

	assert.Equal(t, body, decoded)
}

func TestIsMsgpack(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"replay.msgpack", true},
		{"replay.MPK", true},
		{"replay.json", false},
		{"replay", false},
		{"dir.msgpack/replay.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMsgpack(tt.filename))
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	for _, name := range []string{"replay.json", "replay.msgpack"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			data := createTestData()

			require.NoError(t, Save(path, data))
			loaded, err := LoadReplay(path)

			require.NoError(t, err)
			assert.Equal(t, data, *loaded)
		})
	}
}

func TestSave_Errors(t *testing.T) {
	t.Run("no frames", func(t *testing.T) {
		err := Save(filepath.Join(t.TempDir(), "empty.json"), ReplayData{})
		assert.ErrorIs(t, err, ErrNoFrames)
	})

	t.Run("unwritable path", func(t *testing.T) {
		err := Save(filepath.Join(t.TempDir(), "missing", "replay.json"), createTestData())
		assert.Error(t, err)
	})
}

func TestLoadReplay_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{frames"), 0o600))

		_, err := LoadReplay(path)
		assert.Error(t, err)
	})
}

func TestReplayer_GetInput(t *testing.T) {
	replayer := NewReplayer(createTestData())

	input, dt, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)
	assert.Equal(t, 1.0/60.0, dt)

	input, _, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Right)
	assert.True(t, input.JumpPressed)

	input, dt, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Quit)
	assert.Equal(t, 0.0123, dt)
	assert.Equal(t, 3, replayer.CurrentFrame())

	_, _, ok = replayer.GetInput()
	assert.False(t, ok, "playback ends after the last frame")

	replayer.Reset()
	assert.Zero(t, replayer.CurrentFrame())
}

func TestReplayer_Verify(t *testing.T) {
	data := createTestData()
	replayer := NewReplayer(data)
	recorded := data.Checkpoints[0].Body

	assert.Equal(t, 1, replayer.Checkpoints())
	assert.Equal(t, "showcase", replayer.Scene())

	t.Run("frame without checkpoint", func(t *testing.T) {
		assert.NoError(t, replayer.Verify(0, entity.Body{}, entity.ActionIdle))
	})

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, replayer.Verify(1, recorded, entity.ActionFall))
	})

	t.Run("body differs", func(t *testing.T) {
		drifted := recorded
		drifted.Y += 1e-9

		err := replayer.Verify(1, drifted, entity.ActionFall)
		assert.ErrorIs(t, err, ErrDesync)
	})

	t.Run("action differs", func(t *testing.T) {
		err := replayer.Verify(1, recorded, entity.ActionIdle)
		assert.ErrorIs(t, err, ErrDesync)
	})
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(5, 0.01)

	assert.Equal(t, Version, data.Version)
	require.Len(t, data.Frames, 5)
	for i, f := range data.Frames {
		assert.Equal(t, i, f.F)
		assert.Equal(t, 0.01, f.DT)
		assert.False(t, f.L || f.R || f.JP || f.Q)
	}
}
