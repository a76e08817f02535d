package core

// RuntimeConfig contains configuration passed to modes at initialization.
// Modes use this to size their world and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic map generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ModeState is the current state of a lab mode, returned by
// Mode.State() to feed the platform's status line.
type ModeState struct {
	Status string // One-line readout (path cost, visible count, ...)
	Paused bool   // Whether the simulation is paused
}

// StepResult is returned by Mode.Step() after each simulation tick.
type StepResult struct {
	State ModeState
}
