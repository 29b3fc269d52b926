package core

import "time"

// DefaultTickRate is the frame rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what a host hands a game at Reset.
// Games stay deterministic for a given Seed and TickRate.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Frames per second, 0 means DefaultTickRate
	Seed     int64 // 0 asks the host for a time-based seed
}

// Normalized fills in the tick rate and replaces a zero seed with the clock.
// Hosts call it; games never do, so a zero seed stays reproducible in tests.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// Frame is the simulated time covered by one Step.
func (c RuntimeConfig) Frame() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the summary a game reports to its host after every frame.
type GameState struct {
	Score    int
	Running  bool // A session is in progress
	GameOver bool // The last session ended and no new one has started
}

// StepResult is returned by Step.
type StepResult struct {
	State GameState
	Ended bool // Set only on the frame the session ended
}
