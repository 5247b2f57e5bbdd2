package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"player.width", c.Player.Width > 0},
		{"player.height", c.Player.Height > 0},
		{"physics.gravity", c.Physics.Gravity > 0},
		{"physics.jump_impulse", c.Physics.JumpImpulse < 0},
		{"physics.ground_y", c.Physics.GroundY > c.Player.Height},
		{"obstacles.interval_ms", c.Obstacles.IntervalMs > 0},
		{"obstacles.width", c.Obstacles.Width > 0},
		{"obstacles.min_height", c.Obstacles.MinHeight > 0},
		{"obstacles.height_range", c.Obstacles.HeightRange >= 0},
		{"obstacles.points", c.Obstacles.Points >= 0},
		{"coins.interval_ms", c.Coins.IntervalMs > 0},
		{"coins.size", c.Coins.Size > 0},
		{"coins.y_range", c.Coins.YRange >= 0},
		{"coins.points", c.Coins.Points >= 0},
		{"scroll.base_speed", c.Scroll.BaseSpeed > 0},
		{"scroll.max_bonus", c.Scroll.MaxBonus >= 0},
		{"scroll.hill_tile", c.Scroll.HillTile > 0},
		{"scroll.parallax", c.Scroll.Parallax >= 0},
		{"surface.height", c.Surface.Height >= c.Physics.GroundY},
		{"loop.max_delta_ms", c.Loop.MaxDeltaMs >= 0},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalid, check.name)
		}
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
