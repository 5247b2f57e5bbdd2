package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: Physics{
			Gravity:     0.6,
			JumpImpulse: -12,
			GroundY:     220,
		},
		Player: Player{
			X:      40,
			Width:  28,
			Height: 32,
		},
		Obstacles: Obstacles{
			IntervalMs:  1500,
			Width:       26,
			MinHeight:   24,
			HeightRange: 24,
			SpawnOffset: 10,
			Points:      1,
		},
		Coins: Coins{
			IntervalMs:  1000,
			Size:        12,
			MinY:        120,
			YRange:      60,
			SpawnOffset: 10,
			Points:      5,
		},
		Scroll: Scroll{
			BaseSpeed:    3,
			ScorePerUnit: 100,
			MaxBonus:     6,
			Parallax:     0.2,
			PruneX:       -20,
			HillTile:     200,
		},
		Surface: Surface{
			Height: 260,
		},
		Loop: Loop{
			MaxDeltaMs: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
