package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game in the terminal",
	Long: `Start the game full screen in the terminal.

Controls:
  Space/Up   - Jump
  Enter      - Pause/resume, restart after game over
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Examples:
  runner play
  runner play --seed 42 --fps 30
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := terminalLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	onFrame, stopSound := startSound(logger)
	defer stopSound()

	// One line is kept for the help footer.
	width, height := terminalSize()
	return tui.RunGame(tui.GameOptions{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Width:   width,
		Height:  height - 1,
		OnFrame: onFrame,
		Logger:  logger,
	})
}
