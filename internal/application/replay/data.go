package replay

import "github.com/younwookim/platformer/internal/domain/entity"

// Version is written into every recording.
const Version = "1.1"

// CheckpointInterval is the number of frames between body checkpoints.
const CheckpointInterval = 60

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f" msgpack:"f"`                       // Frame number
	L  bool    `json:"l,omitempty" msgpack:"l,omitempty"`   // Left
	R  bool    `json:"r,omitempty" msgpack:"r,omitempty"`   // Right
	JP bool    `json:"jp,omitempty" msgpack:"jp,omitempty"` // JumpPressed
	Q  bool    `json:"q,omitempty" msgpack:"q,omitempty"`   // Quit
	DT float64 `json:"dt" msgpack:"dt"`                     // Step in seconds
}

// Checkpoint is the player body after frame F was simulated.
type Checkpoint struct {
	F      int         `json:"f" msgpack:"f"`
	Body   entity.Body `json:"body" msgpack:"body"`
	Action string      `json:"action" msgpack:"action"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version     string       `json:"version" msgpack:"version"`
	Scene       string       `json:"scene" msgpack:"scene"`
	StartTime   string       `json:"startTime" msgpack:"startTime"`
	Frames      []FrameInput `json:"frames" msgpack:"frames"`
	Checkpoints []Checkpoint `json:"checkpoints,omitempty" msgpack:"checkpoints,omitempty"`
}
