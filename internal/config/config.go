// Package config provides YAML-based configuration loading for the runner
// game and its frontends.
package config

// RunnerConfig contains all configuration for the coin runner game.
type RunnerConfig struct {
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Coins     Coins     `yaml:"coins"`
	Scroll    Scroll    `yaml:"scroll"`
	Surface   Surface   `yaml:"surface"`
	Loop      Loop      `yaml:"loop"`
}

// Physics defines the vertical motion of the player.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to vertical velocity every frame
	JumpImpulse float64 `yaml:"jump_impulse"` // Vertical velocity set by a jump (negative = up)
	GroundY     float64 `yaml:"ground_y"`     // Y coordinate of the ground line
}

// Player defines the player's fixed geometry.
type Player struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Obstacles defines the obstacle spawner.
type Obstacles struct {
	IntervalMs  float64 `yaml:"interval_ms"`  // Spawn when the timer exceeds this
	Width       float64 `yaml:"width"`        // Fixed obstacle width
	MinHeight   float64 `yaml:"min_height"`   // Inclusive lower bound of random height
	HeightRange float64 `yaml:"height_range"` // Height is MinHeight + [0, HeightRange)
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance past the right edge
	Points      int     `yaml:"points"`       // Score for passing one obstacle
}

// Coins defines the coin spawner.
type Coins struct {
	IntervalMs  float64 `yaml:"interval_ms"`
	Size        float64 `yaml:"size"`
	MinY        float64 `yaml:"min_y"`   // Top of the vertical spawn band
	YRange      float64 `yaml:"y_range"` // Band height
	SpawnOffset float64 `yaml:"spawn_offset"`
	Points      int     `yaml:"points"`
}

// Scroll defines world scrolling. Speed grows linearly with score up to a cap.
type Scroll struct {
	BaseSpeed    float64 `yaml:"base_speed"`
	ScorePerUnit float64 `yaml:"score_per_unit"` // Score needed for +1 speed
	MaxBonus     float64 `yaml:"max_bonus"`
	Parallax     float64 `yaml:"parallax"`  // Hills move at speed * Parallax
	PruneX       float64 `yaml:"prune_x"`   // Entities whose right edge is left of this are removed
	HillTile     float64 `yaml:"hill_tile"` // Horizontal period of the hill pattern
}

// Surface defines the drawing surface.
type Surface struct {
	Height float64 `yaml:"height"`
}

// Loop defines frame loop behaviour.
type Loop struct {
	MaxDeltaMs float64 `yaml:"max_delta_ms"` // Per-frame delta clamp; 0 disables
}
