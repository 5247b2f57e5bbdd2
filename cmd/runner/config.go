package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would use, after applying the search
order: --config, ~/.runner/configs/runner.yaml, ./configs/runner.yaml and the
built-in defaults. Redirect the output to start a custom config file.

With --defaults the built-in file is printed as is, comments included.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}
	cfg, err := loadConfig(newLogger(os.Stderr))
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
