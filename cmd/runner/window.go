package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-runner/internal/platform/desktop"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play the game in a desktop window",
	Long: `Open a desktop window with the game. The window can be resized; the
playfield keeps its height and the width follows the window.

Controls:
  Space/Up   - Jump
  Enter      - Pause/resume, restart after game over
  Esc        - Close the window`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1.5, "Initial window scale")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	logger.Info("opening window", "scale", flagScale, "sound", flagSound)
	return desktop.Run(desktop.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Scale:   flagScale,
		Sound:   flagSound,
		Volume:  flagVolume,
		Logger:  logger,
	})
}
