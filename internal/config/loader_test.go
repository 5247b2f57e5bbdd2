package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded defaults differ from DefaultRunnerConfig()\n got: %+v\nwant: %+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	data := []byte("physics:\n  gravity: 0.8\ncoins:\n  points: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() error: %v", err)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Gravity = %v, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Coins.Points != 10 {
		t.Errorf("Coins.Points = %d, expected 10", cfg.Coins.Points)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpImpulse != -12 {
		t.Errorf("JumpImpulse = %v, expected default -12", cfg.Physics.JumpImpulse)
	}
	if cfg.Obstacles.IntervalMs != 1500 {
		t.Errorf("Obstacles.IntervalMs = %v, expected default 1500", cfg.Obstacles.IntervalMs)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadRunner() should fail for a missing explicit path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadRunnerInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero obstacle interval", "obstacles:\n  interval_ms: 0\n"},
		{"zero gravity", "physics:\n  gravity: 0\n"},
		{"negative gravity", "physics:\n  gravity: -0.6\n"},
		{"downward jump", "physics:\n  jump_impulse: 12\n"},
		{"zero jump", "physics:\n  jump_impulse: 0\n"},
		{"negative obstacle points", "obstacles:\n  points: -1\n"},
		{"negative coin points", "coins:\n  points: -5\n"},
		{"negative parallax", "scroll:\n  parallax: -0.2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatal(err)
			}

			_, err := LoadRunner(path)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("LoadRunner() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestValidateAllowsZeroPoints(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Obstacles.Points = 0
	cfg.Coins.Points = 0
	cfg.Scroll.Parallax = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, expected nil", err)
	}
}

func TestLoadRunnerMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("physics: [1, 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRunner(path); err == nil {
		t.Error("LoadRunner() should fail on malformed YAML")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Error("marshalled defaults should decode to the same config")
	}
}

func TestScrollSpeed(t *testing.T) {
	s := DefaultRunnerConfig().Scroll

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 3},
		{50, 3.5},
		{100, 4},
		{600, 9},
		{10000, 9}, // capped at base + max bonus
	}

	for _, tc := range tests {
		if got := s.Speed(tc.score); got != tc.expected {
			t.Errorf("Speed(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestLoopMaxDelta(t *testing.T) {
	tests := []struct {
		ms       float64
		expected time.Duration
	}{
		{100, 100 * time.Millisecond},
		{0, 0},
		{-5, 0},
		{12.5, 12500 * time.Microsecond},
	}

	for _, tc := range tests {
		if got := (Loop{MaxDeltaMs: tc.ms}).MaxDelta(); got != tc.expected {
			t.Errorf("MaxDelta(%v) = %v, expected %v", tc.ms, got, tc.expected)
		}
	}
}
