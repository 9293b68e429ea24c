package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
)

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder("showcase")

	r.RecordFrame(system.InputState{Left: true}, testDT)
	r.RecordFrame(system.InputState{JumpPressed: true, Quit: true}, 0.01)

	data := r.GetData()
	assert.Equal(t, replay.Version, data.Version)
	assert.Equal(t, "showcase", data.Scene)
	require.Len(t, data.Frames, 2)
	assert.Equal(t, replay.FrameInput{F: 0, L: true, DT: testDT}, data.Frames[0])
	assert.Equal(t, replay.FrameInput{F: 1, JP: true, Q: true, DT: 0.01}, data.Frames[1])
}

func TestRecorder_Stop(t *testing.T) {
	r := NewRecorder("showcase")
	r.RecordFrame(system.InputState{}, testDT)

	r.Stop()
	r.RecordFrame(system.InputState{}, testDT)

	assert.False(t, r.IsRecording())
	assert.Equal(t, 1, r.FrameCount())
}

func TestRecorder_CheckpointInterval(t *testing.T) {
	r := NewRecorder("showcase")
	body := entity.Body{X: 1, Y: 2, Width: 3, Height: 4}

	r.Checkpoint(body, entity.ActionIdle) // nothing recorded yet
	for i := 0; i <= replay.CheckpointInterval; i++ {
		r.RecordFrame(system.InputState{}, testDT)
		r.Checkpoint(body, entity.ActionRun)
	}

	cps := r.GetData().Checkpoints
	require.Len(t, cps, 2)
	assert.Equal(t, 0, cps[0].F)
	assert.Equal(t, replay.CheckpointInterval, cps[1].F)
	assert.Equal(t, "run", cps[1].Action)
	assert.Equal(t, body, cps[1].Body)
}

func TestRecorder_Save(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		r := NewRecorder("showcase")

		err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
		assert.ErrorIs(t, err, replay.ErrNoFrames)
	})

	t.Run("writes frames", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "replay.json")
		r := NewRecorder("showcase")
		r.RecordFrame(system.InputState{Right: true}, testDT)

		require.NoError(t, r.Save(path))

		data, err := replay.LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, r.GetData().Frames, data.Frames)
	})
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()

	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}
