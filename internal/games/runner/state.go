// Package runner implements a side-scrolling coin runner. The player jumps
// over ground obstacles and collects floating coins while the world scrolls
// faster as the score grows.
package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
)

// Mode is the lifecycle state of a run.
type Mode int

const (
	ModeRunning Mode = iota
	ModePaused
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Variant selects how an obstacle looks.
type Variant int

const (
	VariantLow  Variant = iota // Walking mushroom, low hazard
	VariantTall                // Stone block, tall hazard
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	if v == VariantTall {
		return "block"
	}
	return "goomba"
}

// Player is the runner controlled by the user.
type Player struct {
	X, Y     float64
	VY       float64 // Vertical velocity, negative = up
	W, H     float64
	OnGround bool
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Obstacle is a ground hazard. Touching one ends the run.
type Obstacle struct {
	X, Y    float64
	W, H    float64
	Variant Variant
	Passed  bool // Already counted towards the score
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Coin is a floating collectible.
type Coin struct {
	X, Y  float64
	W, H  float64
	Taken bool
}

// Rect returns the collision rectangle for this coin.
func (c Coin) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// State is the complete simulation state of one run. It is owned by a
// single loop and is not safe for concurrent use.
type State struct {
	Player    Player
	Obstacles []Obstacle
	Coins     []Coin
	Score     int
	Mode      Mode

	ObstacleTimer float64 // Milliseconds since the last obstacle spawn
	CoinTimer     float64 // Milliseconds since the last coin spawn
	HillsX        float64 // Background scroll offset, decreases over time
	Width         float64 // Current drawing surface width

	Events core.Events // Things that happened since the last ClearEvents

	cfg config.RunnerConfig
	rng *rand.Rand
}

// NewState creates a fresh run for a surface of the given width.
// A nil rng gets a time-seeded source.
func NewState(cfg config.RunnerConfig, width float64, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &State{
		Width: width,
		cfg:   cfg,
		rng:   rng,
	}
	s.Reset()
	return s
}

// Reset restores the initial state: running, player grounded, no entities,
// zero score. Width and the random source are kept.
func (s *State) Reset() {
	s.Player = Player{
		X:        s.cfg.Player.X,
		Y:        s.groundTop(),
		W:        s.cfg.Player.Width,
		H:        s.cfg.Player.Height,
		OnGround: true,
	}
	s.Obstacles = s.Obstacles[:0]
	s.Coins = s.Coins[:0]
	s.Score = 0
	s.Mode = ModeRunning
	s.ObstacleTimer = 0
	s.CoinTimer = 0
	s.HillsX = 0
}

// Config returns the configuration the state was built with.
func (s *State) Config() config.RunnerConfig {
	return s.cfg
}

// Resize updates the surface width used for spawning.
func (s *State) Resize(width float64) {
	if width > 0 {
		s.Width = width
	}
}

// Running reports whether Update advances the world.
func (s *State) Running() bool {
	return s.Mode == ModeRunning
}

// Speed returns the current scroll speed in units per frame.
func (s *State) Speed() float64 {
	return s.cfg.Scroll.Speed(s.Score)
}

// ClearEvents forgets the events recorded so far.
func (s *State) ClearEvents() {
	s.Events = 0
}

// groundTop returns the player's Y when standing on the ground.
func (s *State) groundTop() float64 {
	return s.cfg.Physics.GroundY - s.cfg.Player.Height
}
