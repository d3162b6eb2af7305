package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// FixedSeed marks a seed chosen by the user. Restarts then derive
	// the next seed from it instead of the wall clock.
	FixedSeed bool
}

// NextSeed returns the seed for the next game after a restart.
func (c RuntimeConfig) NextSeed() int64 {
	if c.FixedSeed {
		return c.Seed + 1
	}
	return time.Now().UnixNano()
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the wall time represented by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool          // Whether the run has ended (the exit was found)
	Paused   bool          // Whether the game is paused or not yet playing
	Elapsed  time.Duration // Play time of the current run
	Steps    int           // Move attempts in the current run
	Bumps    int           // Failed move attempts in the current run
	Width    int           // Maze width of the current run
	Height   int           // Maze height of the current run
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
