package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Display:  DisplayConfig{ScreenWidth: 1200, ScreenHeight: 900, Scale: 1, Framerate: 60, CameraEase: 0.15},
		Physics:  PhysicsSettings{Gravity: 1800, AirFriction: 0.98, SnapGrid: 32, ProximityWindow: 64, MaxDelta: 1.0 / 60.0},
		Movement: MovementConfig{Acceleration: 1500},
		Jump:     JumpConfig{Impulse: 700},
	}
}

func TestPhysicsConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PhysicsConfig)
		wantErr bool
	}{
		{"valid", func(c *PhysicsConfig) {}, false},
		{"air friction of one disables damping", func(c *PhysicsConfig) { c.Physics.AirFriction = 1 }, false},
		{"snap grid zero disables snapping", func(c *PhysicsConfig) { c.Physics.SnapGrid = 0 }, false},
		{"air friction zero", func(c *PhysicsConfig) { c.Physics.AirFriction = 0 }, true},
		{"air friction above one", func(c *PhysicsConfig) { c.Physics.AirFriction = 1.01 }, true},
		{"negative snap grid", func(c *PhysicsConfig) { c.Physics.SnapGrid = -32 }, true},
		{"negative window", func(c *PhysicsConfig) { c.Physics.ProximityWindow = -1 }, true},
		{"zero max delta", func(c *PhysicsConfig) { c.Physics.MaxDelta = 0 }, true},
		{"negative acceleration", func(c *PhysicsConfig) { c.Movement.Acceleration = -1 }, true},
		{"negative impulse", func(c *PhysicsConfig) { c.Jump.Impulse = -1 }, true},
		{"negative camera ease", func(c *PhysicsConfig) { c.Display.CameraEase = -0.1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validPhysicsConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
