package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
)

// ErrDesync is returned when a replayed body differs from its checkpoint.
var ErrDesync = errors.New("replay desync")

// Replayer handles input playback from recorded data
type Replayer struct {
	data        ReplayData
	frame       int
	checkpoints map[int]Checkpoint
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	checkpoints := make(map[int]Checkpoint, len(data.Checkpoints))
	for _, cp := range data.Checkpoints {
		checkpoints[cp.F] = cp
	}
	return &Replayer{
		data:        data,
		checkpoints: checkpoints,
	}
}

// GetInput returns the input and step for the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) GetInput() (input system.InputState, dt float64, ok bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:        fi.L,
		Right:       fi.R,
		JumpPressed: fi.JP,
		Quit:        fi.Q,
	}, fi.DT, true
}

// Verify compares body with the checkpoint recorded for frame, if any.
// Recorded and replayed bodies must match exactly.
func (r *Replayer) Verify(frame int, body entity.Body, action entity.Action) error {
	cp, ok := r.checkpoints[frame]
	if !ok {
		return nil
	}
	if cp.Body != body {
		return fmt.Errorf("%w at frame %d: body %+v, recorded %+v", ErrDesync, frame, body, cp.Body)
	}
	if cp.Action != "" && cp.Action != action.String() {
		return fmt.Errorf("%w at frame %d: action %s, recorded %s", ErrDesync, frame, action, cp.Action)
	}
	return nil
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Checkpoints returns the number of recorded checkpoints
func (r *Replayer) Checkpoints() int {
	return len(r.checkpoints)
}

// Scene returns the scene the recording was made in
func (r *Replayer) Scene() string {
	return r.data.Scene
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Scene:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, DT: dt}
	}

	return data
}
