package playing

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera turns the controller's camera offset into a screen translation that
// keeps the player centered. With a positive duration the view eases toward
// each new target instead of jumping.
type Camera struct {
	X, Y float64

	centerX, centerY float64
	targetX, targetY float64
	duration         float32
	tweenX, tweenY   *gween.Tween
	placed           bool
}

// NewCamera creates a camera for a screen of the given size.
func NewCamera(screenW, screenH int, duration float32) *Camera {
	return &Camera{
		centerX:  float64(screenW) / 2,
		centerY:  float64(screenH) / 2,
		duration: duration,
	}
}

// MapPosition receives the offset for the current tick.
func (c *Camera) MapPosition(x, y float64) {
	tx, ty := x+c.centerX, y+c.centerY
	if c.placed && tx == c.targetX && ty == c.targetY {
		return
	}
	c.targetX, c.targetY = tx, ty

	// The first position is taken as is so the view does not sweep in from 0,0
	if !c.placed || c.duration <= 0 {
		c.placed = true
		c.Snap()
		return
	}
	c.tweenX = gween.New(float32(c.X), float32(tx), c.duration, ease.OutQuad)
	c.tweenY = gween.New(float32(c.Y), float32(ty), c.duration, ease.OutQuad)
}

// Update advances the easing by dt seconds.
func (c *Camera) Update(dt float64) {
	if c.tweenX != nil {
		v, done := c.tweenX.Update(float32(dt))
		c.X = float64(v)
		if done {
			c.X, c.tweenX = c.targetX, nil
		}
	}
	if c.tweenY != nil {
		v, done := c.tweenY.Update(float32(dt))
		c.Y = float64(v)
		if done {
			c.Y, c.tweenY = c.targetY, nil
		}
	}
}

// Snap moves the view to the target immediately.
func (c *Camera) Snap() {
	c.X, c.Y = c.targetX, c.targetY
	c.tweenX, c.tweenY = nil, nil
}

// Target returns the translation the camera is moving toward.
func (c *Camera) Target() (x, y float64) {
	return c.targetX, c.targetY
}

// Settled reports whether the view has reached its target.
func (c *Camera) Settled() bool {
	return c.tweenX == nil && c.tweenY == nil
}
