// Package controller runs the per-tick player pipeline: gravity, collision
// resolution, integration, action selection, animation, facing and camera.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/animation"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// ErrInvalidDelta is returned by Update for a negative or non-finite dt.
var ErrInvalidDelta = errors.New("invalid delta time")

// CameraSink receives the camera offset once per tick.
type CameraSink interface {
	MapPosition(x, y float64)
}

// Config wires a PlayerController.
type Config struct {
	Physics *config.PhysicsConfig

	// Clips defaults to animation.DefaultClips.
	Clips map[entity.Action]animation.Clip

	// Camera is optional.
	Camera CameraSink

	// Logger receives tick traces when Trace or Physics.Debug.Trace is set.
	Logger *slog.Logger
	Trace  bool
}

// RenderFrame is what a renderer needs to draw the player for one tick.
type RenderFrame struct {
	Action         entity.Action
	X, Y           float64
	Width, Height  float64
	Facing         entity.Facing
	AnimationFrame int
}

// Mirrored reports whether the sprite is drawn flipped horizontally.
func (f RenderFrame) Mirrored() bool {
	return f.Facing == entity.FacingLeft
}

// OriginX is the x coordinate the sprite is anchored at. A mirrored sprite
// is anchored at its right edge.
func (f RenderFrame) OriginX() float64 {
	if f.Mirrored() {
		return f.X + f.Width
	}
	return f.X
}

// PlayerController owns the player, its animation and its camera offset.
type PlayerController struct {
	player   *entity.PhysicsPlayer
	resolver *system.CollisionResolver
	physics  *config.PhysicsConfig
	animator *animation.Animator

	action     entity.Action
	prevAction entity.Action
	facing     entity.Facing
	camX, camY float64
	camera     CameraSink

	resolution system.Resolution
	ticks      int

	logger *slog.Logger
	trace  bool
}

// New creates a controller for player. The player starts idle, facing right.
func New(player *entity.PhysicsPlayer, cfg Config) (*PlayerController, error) {
	if player == nil {
		return nil, errors.New("controller: nil player")
	}
	if cfg.Physics == nil {
		return nil, errors.New("controller: nil physics config")
	}
	if err := player.Validate(); err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}

	clips := cfg.Clips
	if clips == nil {
		clips = animation.DefaultClips
	}
	animator, err := animation.NewAnimator(clips)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &PlayerController{
		player:     player,
		resolver:   system.NewCollisionResolver(cfg.Physics),
		physics:    cfg.Physics,
		animator:   animator,
		action:     entity.ActionIdle,
		prevAction: entity.ActionIdle,
		facing:     entity.FacingRight,
		camera:     cfg.Camera,
		logger:     logger,
		trace:      cfg.Trace || cfg.Physics.Debug.Trace,
	}
	c.camX, c.camY = player.CameraOffset()
	return c, nil
}

// Update advances the player by one tick of dt seconds against obstacles.
// The steps always run in the same order and none is skipped.
func (c *PlayerController) Update(dt float64, obstacles []*entity.Body) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	c.traceTick("tick.before", slog.Float64("dt", dt))

	c.player.ApplyGravity(c.physics.Physics.Gravity, dt)

	c.resolution = c.resolver.Resolve(c.player, obstacles)
	if c.trace {
		c.logger.Debug("tick.resolved",
			slog.Int("tick", c.ticks),
			slog.Int("candidates", c.resolution.Candidates),
			slog.Int("collisions", c.resolution.Collisions),
			slog.Bool("grounded", c.resolution.Grounded),
		)
	}

	c.player.Update(dt)

	c.setAction(entity.ActionFor(c.player.SpeedX, c.player.SpeedY))
	c.animator.Update()

	c.facing = entity.FacingFor(c.facing, c.player.SpeedX)
	c.camX, c.camY = c.player.CameraOffset()
	if c.camera != nil {
		c.camera.MapPosition(c.camX, c.camY)
	}

	c.traceTick("tick.after")
	c.ticks++

	if err := c.player.Validate(); err != nil {
		return fmt.Errorf("tick %d: %w", c.ticks, err)
	}
	return nil
}

// setAction records the new action and picks the clip. Entering jump always
// restarts the jump clip; any other change starts the new clip from frame 0.
func (c *PlayerController) setAction(next entity.Action) {
	c.prevAction = c.action
	c.action = next
	if next == entity.ActionJump && c.prevAction != entity.ActionJump {
		c.animator.Replay(next)
		return
	}
	c.animator.Play(next)
}

// ButtonDown handles a discrete press. Only jump has an effect; it reports
// whether the jump was accepted.
func (c *PlayerController) ButtonDown(b system.Button) bool {
	if b != system.ButtonJump {
		return false
	}
	return c.player.Jump()
}

// MoveLeft accelerates the player left for dt seconds.
func (c *PlayerController) MoveLeft(dt float64) {
	c.player.MoveLeft(dt)
}

// MoveRight accelerates the player right for dt seconds.
func (c *PlayerController) MoveRight(dt float64) {
	c.player.MoveRight(dt)
}

// ApplyInput feeds one input snapshot to the player and reports whether quit
// was requested. Call it before Update for the same tick.
func (c *PlayerController) ApplyInput(input system.InputState, dt float64) (quit bool) {
	for _, intent := range system.IntentsFor(input) {
		switch in := intent.(type) {
		case system.MoveIntent:
			if in.Direction < 0 {
				c.MoveLeft(dt)
			} else {
				c.MoveRight(dt)
			}
		case system.ButtonIntent:
			if in.Button == system.ButtonQuit {
				quit = true
				continue
			}
			c.ButtonDown(in.Button)
		}
	}
	return quit
}

// Frame returns the render state for the current tick.
func (c *PlayerController) Frame() RenderFrame {
	return RenderFrame{
		Action:         c.action,
		X:              c.player.X,
		Y:              c.player.Y,
		Width:          c.player.Width,
		Height:         c.player.Height,
		Facing:         c.facing,
		AnimationFrame: c.animator.Frame(),
	}
}

// CameraOffset returns the offset computed on the last tick.
func (c *PlayerController) CameraOffset() (x, y float64) {
	return c.camX, c.camY
}

// Action returns the current action.
func (c *PlayerController) Action() entity.Action { return c.action }

// PreviousAction returns the action of the tick before the last one.
func (c *PlayerController) PreviousAction() entity.Action { return c.prevAction }

// Facing returns the current facing.
func (c *PlayerController) Facing() entity.Facing { return c.facing }

// Grounded reports whether the next jump would be accepted.
func (c *PlayerController) Grounded() bool { return c.player.Grounded }

// Resolution returns the collision report of the last tick.
func (c *PlayerController) Resolution() system.Resolution { return c.resolution }

// Ticks returns the number of completed ticks.
func (c *PlayerController) Ticks() int { return c.ticks }

// Body returns a copy of the player's body.
func (c *PlayerController) Body() entity.Body { return c.player.Body }

func (c *PlayerController) traceTick(msg string, attrs ...slog.Attr) {
	if !c.trace {
		return
	}
	attrs = append(attrs,
		slog.Int("tick", c.ticks),
		slog.Float64("x", c.player.X),
		slog.Float64("y", c.player.Y),
		slog.Float64("speed_x", c.player.SpeedX),
		slog.Float64("speed_y", c.player.SpeedY),
		slog.String("action", c.action.String()),
	)
	c.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
