package entity

import "fmt"

// Tuning holds the movement constants of a PhysicsPlayer.
type Tuning struct {
	// Acceleration is added to SpeedX per second while a move input is held.
	Acceleration float64
	// JumpImpulse is subtracted from SpeedY when a jump is accepted.
	JumpImpulse float64
}

// PhysicsPlayer is the physics side of the player: a body plus jump state.
type PhysicsPlayer struct {
	Body

	// Grounded is set by a qualifying bottom collision and cleared by a jump.
	Grounded bool

	tuning Tuning
}

// NewPhysicsPlayer creates an airborne player at rest.
// x, y is the top-left corner of the player rectangle.
func NewPhysicsPlayer(x, y, width, height float64, tuning Tuning) (*PhysicsPlayer, error) {
	body, err := NewBody(x, y, width, height, 0)
	if err != nil {
		return nil, err
	}
	if !finite(tuning.Acceleration) || tuning.Acceleration < 0 {
		return nil, fmt.Errorf("%w: acceleration %v", ErrInvalidBody, tuning.Acceleration)
	}
	if !finite(tuning.JumpImpulse) || tuning.JumpImpulse < 0 {
		return nil, fmt.Errorf("%w: jump impulse %v", ErrInvalidBody, tuning.JumpImpulse)
	}
	return &PhysicsPlayer{Body: *body, tuning: tuning}, nil
}

// Tuning returns the movement constants.
func (p *PhysicsPlayer) Tuning() Tuning {
	return p.tuning
}

// Jump applies the upward impulse if the player is grounded and reports
// whether it did. Jumping while airborne is silently ignored.
func (p *PhysicsPlayer) Jump() bool {
	if !p.Grounded {
		return false
	}
	p.SpeedY -= p.tuning.JumpImpulse
	p.Grounded = false
	return true
}

// ResetJump marks the player as grounded so the next Jump is accepted.
func (p *PhysicsPlayer) ResetJump() {
	p.Grounded = true
}

// MoveLeft accelerates the player to the left for dt seconds.
func (p *PhysicsPlayer) MoveLeft(dt float64) {
	p.SpeedX -= p.tuning.Acceleration * dt
}

// MoveRight accelerates the player to the right for dt seconds.
func (p *PhysicsPlayer) MoveRight(dt float64) {
	p.SpeedX += p.tuning.Acceleration * dt
}

// Update integrates the position. It must run after gravity and collision
// resolution so this tick's corrections reach the velocity first.
func (p *PhysicsPlayer) Update(dt float64) {
	p.Integrate(dt)
}

// CameraOffset returns the view offset that keeps the player in place on
// screen: the negated position.
func (p *PhysicsPlayer) CameraOffset() (x, y float64) {
	return -p.X, -p.Y
}
