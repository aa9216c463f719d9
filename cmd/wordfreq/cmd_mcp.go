package main

import (
	"fmt"

	"github.com/nvandessel/wordfreq/internal/mcp"
	"github.com/spf13/cobra"
)

func newMCPServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "Run an MCP server exposing word frequency analysis over stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout.

The server exposes one tool, wordfreq_analyze, which analyzes a text file
inside the root directory and returns totals, the ranked words and the
rendered text report. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			root, _ := cmd.Flags().GetString("root")

			server, err := mcp.NewServer(&mcp.Config{
				Name:     "wordfreq",
				Version:  version,
				Root:     root,
				TopN:     cfg.Analysis.TopN,
				BarWidth: cfg.Report.BarWidth,
				Source:   cfg.SourceOptions(),
				Logger:   newLogger(cmd, cfg),
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().String("root", ".", "Directory that analyzed files must be inside")
	addReportFlags(cmd)

	return cmd
}
