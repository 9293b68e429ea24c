package game

import "time"

// Clock measures wall time between ticks, clamped to [0, max] seconds so a
// stalled frame never hands the simulation a huge step.
type Clock struct {
	max  float64
	now  func() time.Time
	last time.Time
}

// NewClock creates a clock that never reports more than max seconds.
func NewClock(max float64) *Clock {
	return &Clock{max: max, now: time.Now}
}

// Tick returns the seconds elapsed since the previous Tick.
// The first call returns max.
func (c *Clock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return c.max
	}

	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	if dt > c.max {
		return c.max
	}
	return dt
}
