package entity

// Direction is the side of a body involved in a collision.
type Direction int

const (
	DirectionTop Direction = iota
	DirectionBottom
	DirectionLeft
	DirectionRight
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirectionTop:
		return "top"
	case DirectionBottom:
		return "bottom"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Facing is the horizontal direction the player sprite looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the string representation of the facing
func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "right"
	case FacingLeft:
		return "left"
	default:
		return "unknown"
	}
}

// FacingFor returns the facing implied by a horizontal speed.
// Zero speed keeps the current facing.
func FacingFor(current Facing, speedX float64) Facing {
	if speedX > 0 {
		return FacingRight
	}
	if speedX < 0 {
		return FacingLeft
	}
	return current
}
