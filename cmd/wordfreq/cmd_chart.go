package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nvandessel/wordfreq/internal/visualization"
	"github.com/nvandessel/wordfreq/internal/wordfreq"
	"github.com/spf13/cobra"
)

// openBrowser is replaced in tests.
var openBrowser = visualization.OpenBrowser

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart <file>",
		Short: "Render the top words as an HTML bar chart",
		Long: `Analyze a file and render the most frequent words as a bar chart in a
self-contained HTML page, then open it in the default browser.

Examples:
  wordfreq chart sample.txt                  # Write to a temp file and open it
  wordfreq chart sample.txt -o words.html    # Write to words.html and open it
  wordfreq chart sample.txt -o words.html --no-open`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)
			output, _ := cmd.Flags().GetString("output")
			noOpen, _ := cmd.Flags().GetBool("no-open")

			res, err := analyzeFile(args[0], cfg, logger, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			path, err := writeChart(res, args[0], output)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"path":         path,
					"total_words":  res.TotalWords,
					"unique_words": res.UniqueWords,
				}); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s\n", path)
			}

			if !noOpen {
				showChart(path, cmd.ErrOrStderr(), logger)
			}
			return nil
		},
	}

	addReportFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "Write the chart to this file instead of a temporary one")
	cmd.Flags().Bool("no-open", false, "Do not open the chart in a browser")

	return cmd
}

// writeChart renders res for the file at sourcePath and writes the page to
// output, or to a new temporary file when output is empty. It returns the
// path written.
func writeChart(res wordfreq.Result, sourcePath, output string) (string, error) {
	html, err := visualization.RenderChartHTML(res, visualization.ChartOptions{
		Source: filepath.Base(sourcePath),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}

	if output == "" {
		f, err := os.CreateTemp("", "wordfreq-*.html")
		if err != nil {
			return "", fmt.Errorf("failed to create chart file: %w", err)
		}
		defer f.Close()
		if _, err := f.Write(html); err != nil {
			return "", fmt.Errorf("failed to write chart: %w", err)
		}
		return f.Name(), nil
	}

	if err := os.WriteFile(output, html, 0644); err != nil {
		return "", fmt.Errorf("failed to write chart: %w", err)
	}
	return output, nil
}

// showChart opens path in the browser. Failure is not fatal: the page is
// already on disk.
func showChart(path string, errOut io.Writer, logger *slog.Logger) {
	if err := openBrowser(path); err != nil {
		logger.Warn("could not open browser", "error", err)
		fmt.Fprintf(errOut, "Open %s in a browser to view the chart.\n", path)
	}
}
