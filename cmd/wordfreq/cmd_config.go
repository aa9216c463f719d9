package main

import (
	"encoding/json"
	"fmt"

	"github.com/nvandessel/wordfreq/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the settings wordfreq would use: built-in defaults overridden by
environment variables.

Environment variables:
  WORDFREQ_TOP        number of words reported
  WORDFREQ_FORMAT     text, json, or yaml
  WORDFREQ_CHART      append the text bar chart (true/false)
  WORDFREQ_BAR_WIDTH  length of the longest bar
  WORDFREQ_PROGRESS   progress bar for large files (true/false)
  WORDFREQ_LOG_LEVEL  info, debug, or trace`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// --json selects the output encoding here, so it must not
			// rewrite the report format the way loadConfig does.
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return enc.Close()
		},
	}
}
