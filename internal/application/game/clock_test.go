package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestClock(max float64) (*Clock, *fakeTime) {
	ft := &fakeTime{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewClock(max)
	c.now = ft.now
	return c, ft
}

func TestClock_Tick(t *testing.T) {
	max := 1.0 / 60.0

	t.Run("first tick returns max", func(t *testing.T) {
		c, _ := newTestClock(max)
		assert.Equal(t, max, c.Tick())
	})

	t.Run("measures elapsed time", func(t *testing.T) {
		c, ft := newTestClock(max)
		c.Tick()

		ft.advance(10 * time.Millisecond)
		assert.InDelta(t, 0.010, c.Tick(), 1e-9)
	})

	t.Run("clamps long frames", func(t *testing.T) {
		c, ft := newTestClock(max)
		c.Tick()

		ft.advance(2 * time.Second)
		assert.Equal(t, max, c.Tick())
	})

	t.Run("clock going backwards yields zero", func(t *testing.T) {
		c, ft := newTestClock(max)
		c.Tick()

		ft.advance(-time.Second)
		assert.Zero(t, c.Tick())
	})
}
