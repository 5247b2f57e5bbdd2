package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	SurfaceW float64 // Drawing surface width in surface units
	TickRate int     // Frames per second requested from the host (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		SurfaceW: 640,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally visible state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Events is a set of notable things that happened during one frame.
// Frontends use it for feedback such as sound effects.
type Events uint8

const (
	EventJumped Events = 1 << iota
	EventPassed
	EventCoin
	EventCrashed
	EventRestarted
)

// Has reports whether all bits of e are set.
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// StepResult is returned by a game after each frame.
type StepResult struct {
	State  GameState
	Events Events
}
