package entity

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBody is returned when a body would hold a non-physical value.
var ErrInvalidBody = errors.New("invalid body")

// Body is an axis-aligned rectangle with a velocity.
// Position is the top-left corner; y grows downward.
type Body struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Width  float64 `json:"width" msgpack:"width"`
	Height float64 `json:"height" msgpack:"height"`

	SpeedX float64 `json:"speedX" msgpack:"speedX"`
	SpeedY float64 `json:"speedY" msgpack:"speedY"`

	// Friction is the factor applied to SpeedX of a body standing on this one.
	Friction float64 `json:"friction" msgpack:"friction"`
}

// NewBody creates a body at rest and validates it.
func NewBody(x, y, width, height, friction float64) (*Body, error) {
	b := &Body{
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		Friction: friction,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate rejects non-finite fields, a non-positive size and friction outside [0,1].
func (b *Body) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"x", b.X}, {"y", b.Y},
		{"width", b.Width}, {"height", b.Height},
		{"speedX", b.SpeedX}, {"speedY", b.SpeedY},
		{"friction", b.Friction},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidBody, f.name, f.v)
		}
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: size %vx%v must be positive", ErrInvalidBody, b.Width, b.Height)
	}
	if b.Friction < 0 || b.Friction > 1 {
		return fmt.Errorf("%w: friction %v outside [0,1]", ErrInvalidBody, b.Friction)
	}
	return nil
}

// SetSpeed replaces the velocity, rejecting non-finite values.
func (b *Body) SetSpeed(speedX, speedY float64) error {
	if !finite(speedX) || !finite(speedY) {
		return fmt.Errorf("%w: speed (%v, %v)", ErrInvalidBody, speedX, speedY)
	}
	b.SpeedX = speedX
	b.SpeedY = speedY
	return nil
}

// Right returns the x coordinate of the right edge.
func (b *Body) Right() float64 { return b.X + b.Width }

// Bottom returns the y coordinate of the bottom edge.
func (b *Body) Bottom() float64 { return b.Y + b.Height }

// ApplyGravity accelerates the body downward. There is no terminal velocity.
func (b *Body) ApplyGravity(gravity, dt float64) {
	b.SpeedY += gravity * dt
}

// ApplyAirFriction damps horizontal speed by factor.
func (b *Body) ApplyAirFriction(factor float64) {
	b.SpeedX *= factor
}

// ApplySurfaceFriction damps horizontal speed by the friction of the surface
// the body stands on.
func (b *Body) ApplySurfaceFriction(surface *Body) {
	b.SpeedX *= surface.Friction
}

// ResetSpeedX stops horizontal motion.
func (b *Body) ResetSpeedX() { b.SpeedX = 0 }

// ResetSpeedY stops vertical motion.
func (b *Body) ResetSpeedY() { b.SpeedY = 0 }

// RoundY snaps Y to the nearest multiple of grid. A non-positive grid is a no-op.
func (b *Body) RoundY(grid float64) {
	if grid <= 0 {
		return
	}
	b.Y = math.Round(b.Y/grid) * grid
}

// Integrate moves the body by its velocity over dt.
func (b *Body) Integrate(dt float64) {
	b.X += b.SpeedX * dt
	b.Y += b.SpeedY * dt
}

// Collide reports whether the two rectangles overlap.
// Bounds are half-open, so bodies that only share an edge do not collide.
func (b *Body) Collide(other *Body) bool {
	return b.X < other.Right() && other.X < b.Right() &&
		b.Y < other.Bottom() && other.Y < b.Bottom()
}

// CollisionDirection returns which side of b is pressed into other: the side
// with the smallest penetration depth. The result is only meaningful when
// Collide(other) is true.
//
// Ties are broken deterministically: vertical beats horizontal, Bottom beats
// Top, and Left beats Right.
func (b *Body) CollisionDirection(other *Body) Direction {
	penBottom := b.Bottom() - other.Y
	penTop := other.Bottom() - b.Y
	penRight := b.Right() - other.X
	penLeft := other.Right() - b.X

	vertical, vDepth := DirectionBottom, penBottom
	if penTop < penBottom {
		vertical, vDepth = DirectionTop, penTop
	}
	horizontal, hDepth := DirectionLeft, penLeft
	if penRight < penLeft {
		horizontal, hDepth = DirectionRight, penRight
	}

	if vDepth <= hDepth {
		return vertical
	}
	return horizontal
}

// Near reports whether other intersects b grown by margin on every side.
func (b *Body) Near(other *Body, margin float64) bool {
	return b.X-margin < other.Right() && other.X < b.Right()+margin &&
		b.Y-margin < other.Bottom() && other.Y < b.Bottom()+margin
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
