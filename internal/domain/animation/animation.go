// Package animation tracks which frame of which clip the player sprite shows.
// It never touches images; a renderer maps (action, frame) to pixels.
package animation

import "fmt"

// Clip describes one animation strip.
type Clip struct {
	Frames        int  // number of frames in the strip
	TicksPerFrame int  // update ticks spent on each frame
	Loop          bool // wrap to frame 0 after the last frame, otherwise hold it
}

// Animation is a playback cursor over a Clip.
type Animation struct {
	Clip

	frame    int
	ticks    int
	finished bool
}

// NewAnimation creates a cursor at frame 0.
func NewAnimation(clip Clip) (*Animation, error) {
	if clip.Frames <= 0 {
		return nil, fmt.Errorf("clip needs at least one frame, got %d", clip.Frames)
	}
	if clip.TicksPerFrame <= 0 {
		clip.TicksPerFrame = 1
	}
	return &Animation{Clip: clip}, nil
}

// Update advances the cursor by one tick.
func (a *Animation) Update() {
	if a.finished {
		return
	}
	a.ticks++
	if a.ticks < a.TicksPerFrame {
		return
	}
	a.ticks = 0
	a.frame++
	if a.frame < a.Frames {
		return
	}
	if a.Loop {
		a.frame = 0
		return
	}
	// Hold the last frame
	a.frame = a.Frames - 1
	a.finished = true
}

// Restart rewinds to frame 0.
func (a *Animation) Restart() {
	a.frame = 0
	a.ticks = 0
	a.finished = false
}

// Frame returns the current frame index.
func (a *Animation) Frame() int {
	return a.frame
}

// Finished reports whether a non-looping clip reached its last frame.
func (a *Animation) Finished() bool {
	return a.finished
}
