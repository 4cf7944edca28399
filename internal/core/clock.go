package core

import "time"

// Clock measures wall-clock time between successive ticks.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock creates a clock backed by time.Now.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a clock that reads time from now.
// Tests use this to drive the clock deterministically.
func NewClockWithSource(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick returns the seconds elapsed since the previous call.
// The first call after construction or Reset returns 0.
func (c *Clock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	return delta.Seconds()
}

// Reset forgets the previous reference point.
func (c *Clock) Reset() {
	c.last = time.Time{}
}
