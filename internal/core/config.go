package core

// RuntimeConfig is what a frontend hands a game on Reset: the drawable area,
// the fixed tick rate and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // cells
	ScreenH  int   // cells
	TickRate int   // ticks per second; <= 0 means DefaultTickRate
	Seed     int64 // 0 lets the frontend pick one from the wall clock
}

// DefaultTickRate matches the gravity tables, which are expressed per tick
// at 60 ticks per second.
const DefaultTickRate = 60

// Rate returns TickRate, or DefaultTickRate when unset.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// GameState is the summary frontends show in a status line.
type GameState struct {
	Score    int // cleared lines
	GameOver bool
	Paused   bool
}

// StepResult reports what one Step did.
type StepResult struct {
	State GameState

	// Advanced is false when the tick was swallowed (paused, held, over).
	Advanced bool
	// Locked is set when the active piece merged into the board this tick.
	Locked bool
	// Cleared is the number of rows removed by that lock.
	Cleared int
}
