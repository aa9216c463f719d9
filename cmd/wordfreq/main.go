package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/nvandessel/wordfreq/internal/config"
	"github.com/nvandessel/wordfreq/internal/logging"
	"github.com/nvandessel/wordfreq/internal/report"
	"github.com/nvandessel/wordfreq/internal/source"
	"github.com/nvandessel/wordfreq/internal/wordfreq"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	notifySignals(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordfreq <file>",
		Short: "Word frequency analyzer for text files",
		Long: `wordfreq counts how often each word appears in a text file and reports
the most frequent ones with their share of all words.

Words are runs of ASCII letters, compared case-insensitively. Words shorter
than two letters are ignored.

Examples:
  wordfreq sample.txt                 # Top 10 words
  wordfreq sample.txt --chart         # With a text bar chart
  wordfreq sample.txt --top 25 --json # Structured output
  wordfreq chart sample.txt           # HTML chart in the browser`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one file path, got %d", len(args))
			}
			return nil
		},
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid from here on; only print usage for bad invocations.
			cmd.SilenceUsage = true
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0])
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (shortcut for --format json)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace")

	addReportFlags(rootCmd)
	rootCmd.Flags().Bool("chart", false, "Append a text bar chart to the report")
	rootCmd.Flags().Int("width", report.DefaultBarWidth, "Length of the longest bar in the text chart")
	rootCmd.Flags().String("format", string(report.FormatText), "Output format: text, json, or yaml")

	rootCmd.AddCommand(
		newVersionCmd(),
		newChartCmd(),
		newLaunchCmd(),
		newMCPServerCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// addReportFlags adds the flags shared by every command that analyzes a file.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("top", "n", wordfreq.DefaultTopN, "Number of most frequent words to report")
}

// loadConfig returns the effective configuration: defaults, then
// WORDFREQ_* environment variables, then flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("top") {
		cfg.Analysis.TopN, _ = flags.GetInt("top")
	}
	if flags.Changed("chart") {
		cfg.Report.Chart, _ = flags.GetBool("chart")
	}
	if flags.Changed("width") {
		cfg.Report.BarWidth, _ = flags.GetInt("width")
	}
	if flags.Changed("format") {
		cfg.Report.Format, _ = flags.GetString("format")
	}
	if jsonOut, _ := flags.GetBool("json"); jsonOut {
		cfg.Report.Format = string(report.FormatJSON)
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
}

// missingFileError reports a path that does not exist.
type missingFileError struct {
	path string
	err  error
}

func (e *missingFileError) Error() string {
	return fmt.Sprintf("File '%s' does not exist.", e.path)
}

func (e *missingFileError) Unwrap() error { return e.err }

// analyzeFile reads path and runs the analysis pipeline.
func analyzeFile(path string, cfg *config.Config, logger *slog.Logger, progressOut io.Writer) (wordfreq.Result, error) {
	start := time.Now()

	opts := cfg.SourceOptions()
	opts.Logger = logger
	opts.ProgressOut = progressOut

	text, err := source.ReadFile(path, opts)
	if err != nil {
		if errors.Is(err, source.ErrFileNotFound) {
			return wordfreq.Result{}, &missingFileError{path: path, err: err}
		}
		return wordfreq.Result{}, err
	}

	res := wordfreq.Analyze(text, cfg.Analysis.TopN)
	logger.Debug("analysis complete",
		"path", path,
		"total_words", res.TotalWords,
		"unique_words", res.UniqueWords,
		"duration_ms", time.Since(start).Milliseconds())
	return res, nil
}

func runAnalyze(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}

	res, err := analyzeFile(path, cfg, logger, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == report.FormatText {
		fmt.Fprintf(out, "Analyzing file: %s\n", path)
	}
	return report.Write(out, res, format, report.TextOptions{
		Chart:    cfg.Report.Chart,
		BarWidth: cfg.Report.BarWidth,
	})
}
