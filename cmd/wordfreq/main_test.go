package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvandessel/wordfreq/internal/report"
	"github.com/nvandessel/wordfreq/internal/source"
	"gopkg.in/yaml.v3"
)

const catText = "The cat sat on the mat. The cat ran."

// clearEnv unsets WORDFREQ_* variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WORDFREQ_TOP", "WORDFREQ_FORMAT", "WORDFREQ_CHART",
		"WORDFREQ_BAR_WIDTH", "WORDFREQ_PROGRESS", "WORDFREQ_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	rootCmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd(t *testing.T) {
	rootCmd := newRootCmd()
	want := []string{"chart", "config", "launch", "mcp-server", "version"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"json", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s missing", flag)
		}
	}
	for _, flag := range []string{"chart", "top", "width", "format"} {
		if rootCmd.Flags().Lookup(flag) == nil {
			t.Errorf("flag --%s missing", flag)
		}
	}
}

func TestRootCmd_TextReport(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "cats.txt", catText)

	stdout, _, err := execute(t, "", path, "--top", "3")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"Analyzing file: " + path,
		"Total words analyzed: 9",
		"Unique words found: 6",
		"Top 3 Most Frequent Words:",
		" 1. the",
		" 3. sat",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "VISUAL REPRESENTATION") {
		t.Error("chart printed without --chart")
	}
}

func TestRootCmd_Chart(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "cats.txt", catText)

	stdout, _, err := execute(t, "", path, "--chart", "--width", "10", "-n", "2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "VISUAL REPRESENTATION") {
		t.Fatalf("chart missing:\n%s", stdout)
	}
	if !strings.Contains(stdout, "|"+strings.Repeat("█", 10)+" 3\n") {
		t.Errorf("longest bar should be 10 wide:\n%s", stdout)
	}
	if !strings.Contains(stdout, "|"+strings.Repeat("█", 6)+" 2\n") {
		t.Errorf("second bar should be 6 wide:\n%s", stdout)
	}
}

func TestRootCmd_JSON(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "cats.txt", catText)

	stdout, _, err := execute(t, "", path, "--json", "--top", "2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var doc report.Document
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if doc.TotalWords != 9 || len(doc.Top) != 2 || doc.Top[0].Word != "the" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestRootCmd_YAMLFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDFREQ_FORMAT", "yaml")
	t.Setenv("WORDFREQ_TOP", "1")
	path := writeFile(t, t.TempDir(), "cats.txt", catText)

	stdout, _, err := execute(t, "", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var doc report.Document
	if err := yaml.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, stdout)
	}
	if len(doc.Top) != 1 || doc.Top[0].Count != 3 {
		t.Errorf("doc = %+v", doc)
	}
}

func TestRootCmd_FlagOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDFREQ_TOP", "1")
	path := writeFile(t, t.TempDir(), "cats.txt", catText)

	stdout, _, err := execute(t, "", path, "--top", "3")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Top 3 Most Frequent Words:") {
		t.Errorf("--top should override WORDFREQ_TOP:\n%s", stdout)
	}
}

func TestRootCmd_EmptyResult(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "letters.txt", "a I a 1 2 3")

	stdout, _, err := execute(t, "", path, "--chart")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, report.NoWordsMessage) {
		t.Errorf("expected %q:\n%s", report.NoWordsMessage, stdout)
	}
	if strings.Contains(stdout, "VISUAL REPRESENTATION") {
		t.Error("chart printed for empty result")
	}
}

func TestRootCmd_MissingArgument(t *testing.T) {
	clearEnv(t)

	stdout, stderr, err := execute(t, "")
	if err == nil {
		t.Fatal("expected error without a file argument")
	}
	if !strings.Contains(stdout+stderr, "Usage:") {
		t.Errorf("usage should be printed for a missing argument, got %q", stdout+stderr)
	}
}

func TestRootCmd_FileNotFound(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "missing.txt")

	stdout, stderr, err := execute(t, "", path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if got, want := err.Error(), "File '"+path+"' does not exist."; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
	if !errors.Is(err, source.ErrFileNotFound) {
		t.Errorf("error should wrap source.ErrFileNotFound: %v", err)
	}
	if strings.Contains(stdout+stderr, "Usage:") {
		t.Error("usage should not be printed for runtime errors")
	}
	if strings.Contains(stdout, "Analyzing file") {
		t.Error("nothing should be analyzed for a missing file")
	}
}

func TestRootCmd_Directory(t *testing.T) {
	clearEnv(t)

	_, _, err := execute(t, "", t.TempDir())
	if !errors.Is(err, source.ErrFileRead) {
		t.Errorf("error = %v, want ErrFileRead", err)
	}
}

func TestRootCmd_InvalidFlags(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "cats.txt", catText)

	tests := []struct {
		name string
		args []string
	}{
		{"negative top", []string{path, "--top", "-1"}},
		{"zero width", []string{path, "--width", "0"}},
		{"bad format", []string{path, "--format", "xml"}},
		{"bad log level", []string{path, "--log-level", "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, "", tt.args...); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestRootCmd_MalformedEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDFREQ_TOP", "many")
	path := writeFile(t, t.TempDir(), "cats.txt", catText)

	_, _, err := execute(t, "", path)
	if err == nil || !strings.Contains(err.Error(), "WORDFREQ_TOP") {
		t.Errorf("error = %v, want mention of WORDFREQ_TOP", err)
	}
}

func TestRootCmd_DebugLogging(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "cats.txt", catText)

	stdout, stderr, err := execute(t, "", path, "--log-level", "debug")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stderr, "analysis complete") {
		t.Errorf("debug log missing from stderr: %q", stderr)
	}
	if strings.Contains(stdout, "level=") {
		t.Error("logs must not go to stdout")
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(stdout, "wordfreq version "+version) {
		t.Errorf("version output = %q", stdout)
	}

	stdout, _, err = execute(t, "", "version", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("version --json output invalid: %v", err)
	}
	if got["version"] != version {
		t.Errorf("version = %q, want %q", got["version"], version)
	}
}
