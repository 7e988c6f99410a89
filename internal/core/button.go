package core

import "time"

// DefaultHoldThreshold is how long a button must stay down before it counts
// as long-pressed.
const DefaultHoldThreshold = 500 * time.Millisecond

// ButtonState tracks one logical button: Released -> Pressed(since) -> Handled.
//
// KeyDown records the press time only on the released-to-pressed edge, so
// platform key repeat does not restart the hold timer. ShouldHandleOnce is
// true exactly once per press until HandledOnce is called; KeyUp resets
// everything.
type ButtonState struct {
	clock     Clock
	threshold time.Duration
	pressedAt time.Time
	pressed   bool
	handled   bool
}

// NewButtonState creates a released button reading time from clock.
// A nil clock falls back to SystemClock; a non-positive threshold falls back
// to DefaultHoldThreshold.
func NewButtonState(clock Clock, threshold time.Duration) *ButtonState {
	if clock == nil {
		clock = SystemClock{}
	}
	if threshold <= 0 {
		threshold = DefaultHoldThreshold
	}
	return &ButtonState{clock: clock, threshold: threshold}
}

// KeyDown registers a press. Idempotent while held.
func (b *ButtonState) KeyDown() {
	if b.pressed {
		return
	}
	b.pressed = true
	b.pressedAt = b.clock.Now()
}

// KeyUp releases the button and clears the handled flag.
func (b *ButtonState) KeyUp() {
	b.pressed = false
	b.handled = false
	b.pressedAt = time.Time{}
}

// ShouldHandleOnce reports whether the current press has not been consumed yet.
func (b *ButtonState) ShouldHandleOnce() bool {
	return b.pressed && !b.handled
}

// HandledOnce marks the current press as consumed.
func (b *ButtonState) HandledOnce() {
	b.handled = true
}

// IsPressed reports whether the button is currently held.
func (b *ButtonState) IsPressed() bool {
	return b.pressed
}

// HeldFor returns how long the button has been held, or 0 when released.
func (b *ButtonState) HeldFor() time.Duration {
	if !b.pressed {
		return 0
	}
	return b.clock.Now().Sub(b.pressedAt)
}

// IsShortPressed reports a press younger than the hold threshold.
func (b *ButtonState) IsShortPressed() bool {
	return b.pressed && b.HeldFor() < b.threshold
}

// IsLongPressed reports a press that has lasted at least the hold threshold.
func (b *ButtonState) IsLongPressed() bool {
	return b.pressed && b.HeldFor() >= b.threshold
}
