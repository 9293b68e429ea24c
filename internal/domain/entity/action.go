package entity

import "math"

// Velocity thresholds that drive the action decision.
const (
	runSpeedThreshold  = 10.0
	jumpSpeedThreshold = -1.0
	fallSpeedThreshold = 1.0
)

// Action is the discrete movement state used to pick an animation.
type Action int

const (
	ActionIdle Action = iota
	ActionRun
	ActionJump
	ActionFall
)

// Actions lists every action in declaration order.
var Actions = []Action{ActionIdle, ActionRun, ActionJump, ActionFall}

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionRun:
		return "run"
	case ActionJump:
		return "jump"
	case ActionFall:
		return "fall"
	default:
		return "unknown"
	}
}

// ActionFor derives the action from a velocity. Rules are checked in order
// and the first match wins:
//
//	run   |speedX| > 10 and speedY == 0
//	jump  speedY < -1
//	fall  speedY > 1
//	idle  otherwise
func ActionFor(speedX, speedY float64) Action {
	switch {
	case math.Abs(speedX) > runSpeedThreshold && speedY == 0:
		return ActionRun
	case speedY < jumpSpeedThreshold:
		return ActionJump
	case speedY > fallSpeedThreshold:
		return ActionFall
	default:
		return ActionIdle
	}
}
