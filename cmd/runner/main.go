// runner is a side-scrolling coin runner for the terminal and the desktop.
//
// Usage:
//
//	runner                   - Landing page with the game (same as "runner page")
//	runner play              - Play the game full screen in the terminal
//	runner window            - Play the game in a desktop window
//	runner snapshot          - Simulate headless and save a PNG
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Load a custom YAML configuration
//	--sound           - Enable sound effects
//	--log-file <path> - Write diagnostics to a file
//	--debug           - Verbose diagnostics
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/sfx"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagSound   bool
	flagVolume  float64
	flagLogFile string
	flagDebug   bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Coin Runner - jump over goombas and collect coins",
	Long: `Coin Runner is a small endless runner. Jump over obstacles, collect
coins and see how far you get.

Available commands:
  page      - Landing page with the game (default)
  play      - Terminal game only
  window    - Desktop window
  snapshot  - Headless run saved as PNG
  config    - Print the effective configuration

Examples:
  runner
  runner play --seed 42
  runner window --sound
  runner snapshot --ticks 600 --out run.png --jump-every 50`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPage,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume (0-1)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the diagnostics logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// terminalLogger returns a logger that never writes to the terminal, which
// Bubble Tea owns while a program runs. The returned func closes the log file.
func terminalLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

// loadConfig loads the runner configuration honoring --config.
func loadConfig(logger *log.Logger) (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "path", flagConfig, "ground_y", cfg.Physics.GroundY)
	return cfg, nil
}

// runtimeConfig builds the runtime config from global flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt
}

// terminalSize returns the terminal size, defaulting to 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// startSound opens the speaker when --sound is set. Failures are logged and
// the game continues muted.
func startSound(logger *log.Logger) (func(core.StepResult), func()) {
	if !flagSound {
		return nil, func() {}
	}
	m := sfx.NewManager(flagVolume, logger)
	if err := m.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil, func() {}
	}
	return m.OnFrame, m.Close
}
