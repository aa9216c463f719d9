package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nvandessel/wordfreq/internal/pathutil"
	"github.com/nvandessel/wordfreq/internal/report"
	"github.com/nvandessel/wordfreq/internal/source"
	"github.com/nvandessel/wordfreq/internal/wordfreq"
)

// registerTools registers all wordfreq MCP tools with the server.
func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "wordfreq_analyze",
		Description: "Count word frequencies in a text file and return the most common words with totals and percentages",
	}, s.handleAnalyze)
}

// handleAnalyze implements the wordfreq_analyze tool.
func (s *Server) handleAnalyze(ctx context.Context, req *sdk.CallToolRequest, args AnalyzeInput) (_ *sdk.CallToolResult, _ AnalyzeOutput, retErr error) {
	start := time.Now()
	defer func() {
		s.logTool("wordfreq_analyze", start, retErr, "path", pathutil.RedactPath(args.Path), "top", args.Top)
	}()

	if strings.TrimSpace(args.Path) == "" {
		return nil, AnalyzeOutput{}, fmt.Errorf("'path' parameter is required")
	}
	if args.Top < 0 {
		return nil, AnalyzeOutput{}, fmt.Errorf("'top' must be non-negative, got %d", args.Top)
	}

	path, err := pathutil.ResolveInRoot(s.root, args.Path)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	text, err := source.ReadFile(path, s.source)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	top := args.Top
	if top == 0 {
		top = s.topN
	}
	res := wordfreq.Analyze(text, top)

	var rendered strings.Builder
	if err := report.WriteText(&rendered, res, report.TextOptions{Chart: args.Chart, BarWidth: s.barWidth}); err != nil {
		return nil, AnalyzeOutput{}, fmt.Errorf("render report: %w", err)
	}

	doc := report.NewDocument(res)
	return nil, AnalyzeOutput{
		Path:        path,
		TotalWords:  doc.TotalWords,
		UniqueWords: doc.UniqueWords,
		Empty:       doc.Empty,
		Top:         doc.Top,
		Report:      rendered.String(),
	}, nil
}

// logTool records a tool invocation without its content.
func (s *Server) logTool(tool string, start time.Time, err error, attrs ...any) {
	attrs = append(attrs, "tool", tool, "duration_ms", time.Since(start).Milliseconds())
	if err != nil {
		s.logger.Warn("tool call failed", append(attrs, "error", err)...)
		return
	}
	s.logger.Info("tool call", attrs...)
}
