package mcp

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvandessel/wordfreq/internal/logging"
	"github.com/nvandessel/wordfreq/internal/pathutil"
	"github.com/nvandessel/wordfreq/internal/report"
	"github.com/nvandessel/wordfreq/internal/source"
)

func setupTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	server, err := NewServer(&Config{Name: "test", Version: "v0", Root: root})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server, root
}

func writeText(t *testing.T, root, name, text string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte(text), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestHandleAnalyze(t *testing.T) {
	server, root := setupTestServer(t)
	writeText(t, root, "cats.txt", "The cat sat on the mat. The cat ran.")

	_, out, err := server.handleAnalyze(context.Background(), nil, AnalyzeInput{Path: "cats.txt", Top: 3})
	if err != nil {
		t.Fatalf("handleAnalyze failed: %v", err)
	}

	if out.TotalWords != 9 || out.UniqueWords != 6 || out.Empty {
		t.Errorf("totals = %+v", out)
	}
	want := []report.RankedWord{
		{Rank: 1, Word: "the", Count: 3, Percent: 33.3},
		{Rank: 2, Word: "cat", Count: 2, Percent: 22.2},
		{Rank: 3, Word: "sat", Count: 1, Percent: 11.1},
	}
	if len(out.Top) != len(want) {
		t.Fatalf("len(Top) = %d, want %d", len(out.Top), len(want))
	}
	for i := range want {
		if out.Top[i] != want[i] {
			t.Errorf("Top[%d] = %+v, want %+v", i, out.Top[i], want[i])
		}
	}
	if filepath.Base(out.Path) != "cats.txt" || !filepath.IsAbs(out.Path) {
		t.Errorf("Path = %q, want absolute path to cats.txt", out.Path)
	}
	if !strings.Contains(out.Report, "WORD FREQUENCY ANALYSIS RESULTS") {
		t.Errorf("Report missing header:\n%s", out.Report)
	}
	if strings.Contains(out.Report, "VISUAL REPRESENTATION") {
		t.Error("chart rendered without chart option")
	}
}

func TestHandleAnalyze_DefaultTopAndChart(t *testing.T) {
	server, root := setupTestServer(t)
	words := []string{"aa", "bb", "cc", "dd", "ee", "ff", "gg", "hh", "ii", "jj", "kk", "ll"}
	writeText(t, root, "many.txt", strings.Join(words, " "))

	_, out, err := server.handleAnalyze(context.Background(), nil, AnalyzeInput{Path: "many.txt", Chart: true})
	if err != nil {
		t.Fatalf("handleAnalyze failed: %v", err)
	}
	if len(out.Top) != 10 {
		t.Errorf("len(Top) = %d, want default 10", len(out.Top))
	}
	if out.Top[0].Word != "aa" || out.Top[9].Word != "jj" {
		t.Errorf("ties should keep first-seen order: %+v", out.Top)
	}
	if !strings.Contains(out.Report, "VISUAL REPRESENTATION") {
		t.Error("chart missing from report")
	}
}

func TestHandleAnalyze_EmptyFile(t *testing.T) {
	server, root := setupTestServer(t)
	writeText(t, root, "letters.txt", "a a a i i")

	_, out, err := server.handleAnalyze(context.Background(), nil, AnalyzeInput{Path: "letters.txt"})
	if err != nil {
		t.Fatalf("handleAnalyze failed: %v", err)
	}
	if !out.Empty || out.TotalWords != 0 || len(out.Top) != 0 {
		t.Errorf("expected empty result, got %+v", out)
	}
	if strings.TrimSpace(out.Report) != report.NoWordsMessage {
		t.Errorf("Report = %q, want %q", out.Report, report.NoWordsMessage)
	}
}

func TestHandleAnalyze_Errors(t *testing.T) {
	server, root := setupTestServer(t)
	writeText(t, root, "ok.txt", "fine words")

	tests := []struct {
		name    string
		input   AnalyzeInput
		wantIs  error
		wantMsg string
	}{
		{"missing path", AnalyzeInput{}, nil, "'path' parameter is required"},
		{"negative top", AnalyzeInput{Path: "ok.txt", Top: -1}, nil, "non-negative"},
		{"not found", AnalyzeInput{Path: "missing.txt"}, source.ErrFileNotFound, ""},
		{"outside root", AnalyzeInput{Path: "../../outside.txt"}, pathutil.ErrOutsideRoot, ""},
		{"directory", AnalyzeInput{Path: "."}, source.ErrFileRead, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := server.handleAnalyze(context.Background(), nil, tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("error = %v, want %v", err, tt.wantIs)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestHandleAnalyze_LogsCalls(t *testing.T) {
	var buf bytes.Buffer
	root := t.TempDir()
	server, err := NewServer(&Config{Name: "t", Version: "v", Root: root, Logger: logging.NewLogger("info", &buf)})
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	writeText(t, root, "log.txt", "hello hello")

	if _, _, err := server.handleAnalyze(context.Background(), nil, AnalyzeInput{Path: "log.txt"}); err != nil {
		t.Fatalf("handleAnalyze failed: %v", err)
	}
	if _, _, err := server.handleAnalyze(context.Background(), nil, AnalyzeInput{Path: "nope.txt"}); err == nil {
		t.Fatal("expected error for missing file")
	}

	out := buf.String()
	if !strings.Contains(out, "tool=wordfreq_analyze") {
		t.Errorf("log missing tool name: %q", out)
	}
	if !strings.Contains(out, "tool call failed") {
		t.Errorf("log missing failure entry: %q", out)
	}
	if strings.Contains(out, "hello") {
		t.Error("log must not contain file content")
	}
}
