package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-runner/internal/platform/tui"
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Show the landing page with the game",
	Long: `Show the landing page: a hero banner, the game section and a footer.

Controls:
  Enter      - Jump to the game (on the banner), pause/resume or restart
  Space/Up   - Jump
  Esc        - Back to the banner
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit`,
	Args: cobra.NoArgs,
	RunE: runPage,
}

var flagMono bool

func init() {
	pageCmd.Flags().BoolVar(&flagMono, "mono", false, "Draw the page without colors")
	rootCmd.Flags().BoolVar(&flagMono, "mono", false, "Draw the page without colors")
}

func runPage(_ *cobra.Command, _ []string) error {
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

	width, height := terminalSize()
	return tui.RunPage(tui.DefaultHero(), tui.GameOptions{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Width:   width,
		Height:  height,
		OnFrame: onFrame,
		Logger:  logger,
		Mono:    flagMono,
	})
}
