package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate when a value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display"`
	Physics  PhysicsSettings `json:"physics"`
	Movement MovementConfig  `json:"movement"`
	Jump     JumpConfig      `json:"jump"`
	Debug    DebugConfig     `json:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        int     `json:"scale"`
	Framerate    int     `json:"framerate"`
	CameraEase   float64 `json:"cameraEase"` // seconds, 0 follows the player exactly
}

type PhysicsSettings struct {
	Gravity         float64 `json:"gravity"`         // pixels/s², positive is down
	AirFriction     float64 `json:"airFriction"`     // SpeedX factor per non-colliding obstacle
	SnapGrid        float64 `json:"snapGrid"`        // landing snaps Y to this grid
	ProximityWindow float64 `json:"proximityWindow"` // broad-phase margin around the player
	MaxDelta        float64 `json:"maxDelta"`        // upper bound for the frame delta, seconds
}

type MovementConfig struct {
	Acceleration float64 `json:"acceleration"`
}

type JumpConfig struct {
	Impulse float64 `json:"impulse"`
}

// DebugConfig gates tick tracing.
type DebugConfig struct {
	Trace bool `json:"trace"`
}

// Validate checks the ranges the simulation relies on.
func (c *PhysicsConfig) Validate() error {
	p := c.Physics
	switch {
	case p.AirFriction <= 0 || p.AirFriction > 1:
		return fmt.Errorf("%w: airFriction %v outside (0,1]", ErrInvalidConfig, p.AirFriction)
	case p.SnapGrid < 0:
		return fmt.Errorf("%w: snapGrid %v is negative", ErrInvalidConfig, p.SnapGrid)
	case p.ProximityWindow < 0:
		return fmt.Errorf("%w: proximityWindow %v is negative", ErrInvalidConfig, p.ProximityWindow)
	case p.MaxDelta <= 0:
		return fmt.Errorf("%w: maxDelta %v must be positive", ErrInvalidConfig, p.MaxDelta)
	case c.Movement.Acceleration < 0:
		return fmt.Errorf("%w: acceleration %v is negative", ErrInvalidConfig, c.Movement.Acceleration)
	case c.Jump.Impulse < 0:
		return fmt.Errorf("%w: jump impulse %v is negative", ErrInvalidConfig, c.Jump.Impulse)
	case c.Display.CameraEase < 0:
		return fmt.Errorf("%w: cameraEase %v is negative", ErrInvalidConfig, c.Display.CameraEase)
	}
	return nil
}
