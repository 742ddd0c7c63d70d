// unomi-mcp: MCP server for Apache Unomi profile management.
//
// Exposes profile lookup, search, and update tools over the MCP stdio
// transport, backed by a Unomi server configured through the environment.
//
// Usage:
//
//	unomi-mcp serve     # Start MCP server (stdio transport)
//	unomi-mcp version   # Print the version
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cdp-labs/unomi-mcp/internal/config"
	"github.com/cdp-labs/unomi-mcp/internal/logging"
	unomiserver "github.com/cdp-labs/unomi-mcp/internal/server"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("unomi-mcp v%s\n", unomiserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	logging.Setup()

	// Required configuration is validated here, before anything is built:
	// a missing key or profile id never reaches the first tool call.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	s := unomiserver.New(cfg)

	// On interrupt the stdio connection is dropped and the process exits
	// cleanly; there is no in-flight state worth draining.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("shutting down")
		os.Exit(0)
	}()

	log.Info().Str("baseURL", cfg.BaseURL).Str("sourceId", cfg.SourceID).
		Msg("starting unomi-mcp server on stdio")
	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `unomi-mcp v%s — MCP server for Apache Unomi

Usage:
  unomi-mcp serve     Start the MCP server (stdio transport)
  unomi-mcp version   Print the version

Configuration (environment):
  UNOMI_BASE_URL      Unomi server URL (default %s)
  UNOMI_USERNAME      Basic-auth user (default %s)
  UNOMI_PASSWORD      Basic-auth password (default %s)
  UNOMI_KEY           Privileged third-party key (required)
  UNOMI_PROFILE_ID    Fallback profile id (required)
  UNOMI_SOURCE_ID     Source identifier (default %s)
  UNOMI_EMAIL         Resolve the profile by this email (optional)
  UNOMI_LOG_LEVEL     Log level (default info)
`, unomiserver.Version, config.DefaultBaseURL, config.DefaultUsername,
		config.DefaultPassword, config.DefaultSourceID)
}
