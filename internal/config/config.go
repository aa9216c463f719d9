// Package config provides configuration loading for wordfreq.
// Settings come from built-in defaults overridden by WORDFREQ_* environment
// variables; command-line flags are applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nvandessel/wordfreq/internal/logging"
	"github.com/nvandessel/wordfreq/internal/report"
	"github.com/nvandessel/wordfreq/internal/source"
	"github.com/nvandessel/wordfreq/internal/wordfreq"
)

// Config contains all wordfreq settings.
type Config struct {
	// Analysis contains settings for the frequency pipeline.
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`

	// Report contains settings for rendering results.
	Report ReportConfig `json:"report" yaml:"report"`

	// Input contains settings for reading files.
	Input InputConfig `json:"input" yaml:"input"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// AnalysisConfig configures ranking.
type AnalysisConfig struct {
	// TopN is the number of words reported. Must be >= 0.
	TopN int `json:"top_n" yaml:"top_n"`
}

// ReportConfig configures the reporters.
type ReportConfig struct {
	// Format is "text", "json" or "yaml".
	Format string `json:"format" yaml:"format"`

	// Chart appends the character bar chart to text reports.
	Chart bool `json:"chart" yaml:"chart"`

	// BarWidth is the length of the longest bar in the text chart.
	BarWidth int `json:"bar_width" yaml:"bar_width"`
}

// InputConfig configures file reading.
type InputConfig struct {
	// Progress shows a progress bar on stderr for large files.
	Progress bool `json:"progress" yaml:"progress"`

	// ProgressThreshold is the file size in bytes above which the bar is shown.
	ProgressThreshold int64 `json:"progress_threshold" yaml:"progress_threshold"`
}

// LoggingConfig configures wordfreq's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			TopN: wordfreq.DefaultTopN,
		},
		Report: ReportConfig{
			Format:   string(report.FormatText),
			Chart:    false,
			BarWidth: report.DefaultBarWidth,
		},
		Input: InputConfig{
			Progress:          true,
			ProgressThreshold: source.DefaultProgressThreshold,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns the defaults with environment variable overrides applied.
// Malformed numeric or boolean values are reported as errors.
func Load() (*Config, error) {
	config := Default()
	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Analysis.TopN < 0 {
		return fmt.Errorf("top_n must be non-negative, got %d", c.Analysis.TopN)
	}

	if c.Report.BarWidth < 1 {
		return fmt.Errorf("bar_width must be at least 1, got %d", c.Report.BarWidth)
	}

	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return err
	}

	if c.Input.ProgressThreshold < 0 {
		return fmt.Errorf("progress_threshold must be non-negative, got %d", c.Input.ProgressThreshold)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// SourceOptions returns the file reading options for this config.
func (c *Config) SourceOptions() source.Options {
	return source.Options{
		Progress:          c.Input.Progress,
		ProgressThreshold: c.Input.ProgressThreshold,
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv("WORDFREQ_TOP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WORDFREQ_TOP: %w", err)
		}
		config.Analysis.TopN = n
	}

	if v := os.Getenv("WORDFREQ_FORMAT"); v != "" {
		config.Report.Format = v
	}

	if v := os.Getenv("WORDFREQ_CHART"); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("WORDFREQ_CHART: %w", err)
		}
		config.Report.Chart = b
	}

	if v := os.Getenv("WORDFREQ_BAR_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WORDFREQ_BAR_WIDTH: %w", err)
		}
		config.Report.BarWidth = n
	}

	if v := os.Getenv("WORDFREQ_PROGRESS"); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("WORDFREQ_PROGRESS: %w", err)
		}
		config.Input.Progress = b
	}

	if v := os.Getenv("WORDFREQ_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
