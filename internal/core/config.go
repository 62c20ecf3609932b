package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// ContactKind classifies a ball contact resolved during a physics step.
// This is the collision feed at the game's boundary: the physics step
// reports only the classification, never collider details.
type ContactKind int

const (
	ContactSafe   ContactKind = iota // Landed on a safe segment, ball relaunches
	ContactDeadly                    // Hit a hazard segment, run ends
	ContactFinish                    // Reached the finish ring, level complete
)

// String returns a human-readable name for the contact kind.
func (k ContactKind) String() string {
	switch k {
	case ContactSafe:
		return "safe"
	case ContactDeadly:
		return "deadly"
	case ContactFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// ContactEvent is a single tagged contact delivered by a simulation tick.
type ContactEvent struct {
	Kind      ContactKind
	RingIndex int // Platform index of the ring the ball touched
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any contact events that occurred.
type StepResult struct {
	State  GameState
	Events []ContactEvent
}
