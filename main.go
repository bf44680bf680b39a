package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/krakend/docs-search/internal/cli"
	"github.com/krakend/docs-search/internal/config"
	"github.com/krakend/docs-search/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName  = "docs-search-mcp-server"
	description = "MCP server for documentation site search"

	// configEnv points to a config file other than the default location
	configEnv = "DOCS_SEARCH_CONFIG"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("%s version %s\n", serverName, cli.Version)
		os.Exit(0)
	}

	// Set up logging to stderr (MCP uses stdout for protocol)
	log.SetOutput(os.Stderr)
	log.Printf("%s v%s starting...", serverName, cli.Version)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the index synchronously; a failed load leaves search operative with an empty index
	store := cfg.NewStore(tools.NewEmbeddedDataProvider())
	store.Init(ctx)

	// Create MCP server
	server := createMCPServer()
	tools.RegisterDocSearchTools(server, tools.NewDocSearch(store, cfg.Search.MinQueryLength))
	log.Printf("✓ All tools registered: 2 tools (search_documentation + refresh_search_index)")

	log.Printf("✓ Server ready and waiting for connections")

	// Run server with stdio transport
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadConfig reads the config file named by DOCS_SEARCH_CONFIG, or the default one
func loadConfig() (*config.Config, error) {
	if path := os.Getenv(configEnv); path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// createMCPServer initializes the MCP server
func createMCPServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: cli.Version,
		},
		nil, // Default options
	)

	log.Printf("Server initialized: %s v%s (%s)", serverName, cli.Version, description)
	return server
}
