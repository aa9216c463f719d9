// Package mcp provides an MCP (Model Context Protocol) server for wordfreq.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/nvandessel/wordfreq/internal/logging"
	"github.com/nvandessel/wordfreq/internal/report"
	"github.com/nvandessel/wordfreq/internal/source"
	"github.com/nvandessel/wordfreq/internal/wordfreq"
)

// Server wraps the MCP SDK server and exposes word-frequency analysis as a tool.
type Server struct {
	server   *sdk.Server
	root     string
	topN     int
	barWidth int
	source   source.Options
	logger   *slog.Logger
}

// Config holds server configuration.
type Config struct {
	Name    string // Server name (e.g., "wordfreq")
	Version string // Server version
	Root    string // Directory that tool paths are confined to

	TopN     int            // Default number of words when the caller gives none
	BarWidth int            // Width of the text chart in rendered reports
	Source   source.Options // File reading options; progress is always disabled
	Logger   *slog.Logger   // Nil discards logs
}

// NewServer creates a new MCP server with wordfreq tools.
func NewServer(cfg *Config) (*Server, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("invalid root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("invalid root: %s is not a directory", cfg.Root)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	topN := cfg.TopN
	if topN <= 0 {
		topN = wordfreq.DefaultTopN
	}
	barWidth := cfg.BarWidth
	if barWidth <= 0 {
		barWidth = report.DefaultBarWidth
	}

	// stdout carries the protocol, so never draw a progress bar.
	srcOpts := cfg.Source
	srcOpts.Progress = false
	srcOpts.Logger = logger

	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &sdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, req *sdk.InitializedRequest) {
			logger.Debug("mcp client initialized")
		},
	})

	s := &Server{
		server:   mcpServer,
		root:     cfg.Root,
		topN:     topN,
		barWidth: barWidth,
		source:   srcOpts,
		logger:   logger,
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server starting", "root", s.root)
	err := s.server.Run(ctx, &sdk.StdioTransport{})
	if ctx.Err() != nil {
		return nil
	}
	return err
}
