package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nvandessel/wordfreq/internal/launcher"
	"github.com/nvandessel/wordfreq/internal/report"
	"github.com/spf13/cobra"
)

func newLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch",
		Short: "Choose between the text report and the browser chart interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)
			errOut := cmd.ErrOrStderr()

			menu := &launcher.Menu{
				Title: "WORD FREQUENCY ANALYZER",
				Options: []launcher.Option{
					{
						Key:   "1",
						Label: "Command Line Interface (CLI)",
						Description: []string{
							"Fast and simple",
							"Great for scripts and automation",
							"Usage: wordfreq <file> [--chart]",
						},
						Run: func(ctx context.Context, in *bufio.Reader, out io.Writer) error {
							fmt.Fprintln(out, "\nLaunching CLI version...")
							fmt.Fprintln(out, "Note: You can also run 'wordfreq <file>' directly")

							path, err := launcher.Prompt(in, out, "Enter the path to your text file: ")
							if err != nil || path == "" {
								return nil
							}
							answer, err := launcher.Prompt(in, out, "Show chart? (y/n): ")
							if err != nil {
								return nil
							}

							res, err := analyzeFile(path, cfg, logger, errOut)
							if err != nil {
								return err
							}
							fmt.Fprintf(out, "Analyzing file: %s\n", path)
							return report.WriteText(out, res, report.TextOptions{
								Chart:    strings.EqualFold(answer, "y"),
								BarWidth: cfg.Report.BarWidth,
							})
						},
					},
					{
						Key:   "2",
						Label: "Graphical chart (browser)",
						Description: []string{
							"Bar chart of the top words",
							"Self-contained HTML page",
							"Opens in your default browser",
						},
						Run: func(ctx context.Context, in *bufio.Reader, out io.Writer) error {
							fmt.Fprintln(out, "\nLaunching chart...")

							path, err := launcher.Prompt(in, out, "Enter the path to your text file: ")
							if err != nil || path == "" {
								return nil
							}

							res, err := analyzeFile(path, cfg, logger, errOut)
							if err != nil {
								return err
							}
							chartPath, err := writeChart(res, path, "")
							if err != nil {
								return err
							}
							fmt.Fprintf(out, "Chart written to %s\n", chartPath)
							showChart(chartPath, errOut, logger)
							return nil
						},
					},
					{
						Key:   "3",
						Label: "Exit",
						Run: func(ctx context.Context, in *bufio.Reader, out io.Writer) error {
							fmt.Fprintln(out, "Goodbye!")
							return launcher.ErrExit
						},
					},
				},
			}

			return menu.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
