package core

import "fmt"

// RuntimeConfig contains configuration passed to the game at initialization.
// Hosts use this to describe the output surface and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width in characters
	ScreenH  int   // Host surface height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // A fixed seed; hosts wanting a fresh game per run substitute the current time
	}
}

// GameState enumerates the two states of a session.
type GameState int

const (
	StateRunning GameState = iota
	StateOver
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateOver:
		return "Over"
	default:
		return fmt.Sprintf("GameState(%d)", int(s))
	}
}

// Status is a snapshot of the session returned after each tick.
type Status struct {
	State       GameState
	Score       float64
	PairsPassed int
	Tick        int
}

// GameOver reports whether the session has ended.
func (s Status) GameOver() bool {
	return s.State == StateOver
}
