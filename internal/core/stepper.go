package core

import "time"

// maxCatchUp bounds how many ticks a single Advance may return, so a long
// stall (suspended terminal, debugger) does not fast-forward the game.
const maxCatchUp = 10

// Stepper converts elapsed wall-clock time into a whole number of fixed
// simulation ticks, carrying the remainder to the next frame.
type Stepper struct {
	step    time.Duration
	pending time.Duration
}

// NewStepper creates a stepper for the given tick rate (ticks per second).
// Non-positive rates fall back to 60.
func NewStepper(tickRate int) *Stepper {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Stepper{step: time.Second / time.Duration(tickRate)}
}

// Step returns the duration of one tick.
func (s *Stepper) Step() time.Duration {
	return s.step
}

// Advance adds elapsed time and returns how many ticks should run now.
func (s *Stepper) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		s.pending += elapsed
	}
	n := int(s.pending / s.step)
	if n > maxCatchUp {
		n = maxCatchUp
		s.pending = 0
		return n
	}
	s.pending -= time.Duration(n) * s.step
	return n
}

// Reset drops any accumulated time.
func (s *Stepper) Reset() {
	s.pending = 0
}
