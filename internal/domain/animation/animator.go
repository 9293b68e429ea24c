package animation

import (
	"fmt"

	"github.com/younwookim/platformer/internal/domain/entity"
)

// DefaultClips mirrors the stock sprite sheet: ten frames for run, idle and
// jump, and a single held frame for fall. Jump plays once.
var DefaultClips = map[entity.Action]Clip{
	entity.ActionIdle: {Frames: 10, TicksPerFrame: 4, Loop: true},
	entity.ActionRun:  {Frames: 10, TicksPerFrame: 4, Loop: true},
	entity.ActionJump: {Frames: 10, TicksPerFrame: 4, Loop: false},
	entity.ActionFall: {Frames: 1, TicksPerFrame: 4, Loop: true},
}

// Animator owns one Animation per action and remembers which one is current.
type Animator struct {
	animations map[entity.Action]*Animation
	current    entity.Action
}

// NewAnimator builds an animator with every action present in clips.
// All actions must have a clip; the animator starts on idle.
func NewAnimator(clips map[entity.Action]Clip) (*Animator, error) {
	a := &Animator{
		animations: make(map[entity.Action]*Animation, len(entity.Actions)),
		current:    entity.ActionIdle,
	}
	for _, action := range entity.Actions {
		clip, ok := clips[action]
		if !ok {
			return nil, fmt.Errorf("missing clip for action %s", action)
		}
		anim, err := NewAnimation(clip)
		if err != nil {
			return nil, fmt.Errorf("clip %s: %w", action, err)
		}
		a.animations[action] = anim
	}
	return a, nil
}

// Play switches to action and starts it from frame 0. Playing the action
// that is already current keeps its progress.
func (a *Animator) Play(action entity.Action) {
	if action == a.current {
		return
	}
	a.Replay(action)
}

// Replay switches to action and always starts it from frame 0.
func (a *Animator) Replay(action entity.Action) {
	anim, ok := a.animations[action]
	if !ok {
		return
	}
	a.current = action
	anim.Restart()
}

// Update advances the current animation by one tick.
func (a *Animator) Update() {
	a.animations[a.current].Update()
}

// Current returns the action whose clip is playing.
func (a *Animator) Current() entity.Action {
	return a.current
}

// Frame returns the frame index of the current clip.
func (a *Animator) Frame() int {
	return a.animations[a.current].Frame()
}

// Finished reports whether the current clip is a one-shot that has ended.
func (a *Animator) Finished() bool {
	return a.animations[a.current].Finished()
}
