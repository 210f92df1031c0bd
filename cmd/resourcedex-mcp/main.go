package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "resourcedex/internal/adapters/mcp"
	"resourcedex/internal/adapters/sources"
	"resourcedex/internal/config"
	"resourcedex/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("resourcedex-mcp: %v", err)
	}

	dataFlag := flag.String("data", cfg.DataPath, "dataset file (.json, .csv, or .db snapshot)")
	flag.Parse()

	// stdout carries the MCP protocol, logs go to stderr
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("resourcedex-mcp: %v", err)
	}
	defer logger.Sync()

	source, closeSource, err := sources.Open(config.ExpandHome(*dataFlag), logger)
	if err != nil {
		log.Fatalf("resourcedex-mcp: %v", err)
	}
	defer closeSource()

	mcpServer := server.NewMCPServer(
		"resourcedex-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, source, logger)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("resourcedex-mcp: %v", err)
	}
}
