package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/config"
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Starts the planner as an MCP server on standard input/output.
All logging goes to stderr; stdout carries the JSON-RPC stream.`,
	RunE: runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Logs must never touch stdout, it carries the protocol stream.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)
	log.SetOutput(os.Stderr)

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	slog.Info("starting emergency-medicare-planner", "transport", "stdio", "version", server.Version)
	if err := mcpserver.ServeStdio(srv); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server stopped: %w", err)
	}
	slog.Info("server shut down")
	return nil
}
