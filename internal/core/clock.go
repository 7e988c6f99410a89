package core

import "time"

// Clock is a source of monotonic timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process wall clock. time.Now carries a monotonic
// reading, so differences between its values are safe to compare.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. Simulations advance it once per tick
// so that hold timing is a pure function of the tick count.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock frozen at the given instant.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current instant.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward. Negative durations are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now = c.now.Add(d)
	}
}
