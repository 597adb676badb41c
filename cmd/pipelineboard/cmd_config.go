package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pipelineboard/internal/config"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the effective configuration to config.toml",
	Long: `Writes the configuration currently in effect (file values, environment
overrides and command-line flags) to the config file named by --config,
or to config.toml next to the executable.`,
	RunE: runInitConfig,
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.SaveConfig(cfg, path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", path)
	return nil
}
