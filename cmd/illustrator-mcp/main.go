package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/illustrator-mcp/internal/common"
	"github.com/bobmcallan/illustrator-mcp/internal/config"
	"github.com/bobmcallan/illustrator-mcp/internal/illustrator"
	"github.com/bobmcallan/illustrator-mcp/internal/system"
)

func main() {
	httpMode := flag.Bool("http", false, "Serve MCP over streamable HTTP instead of stdio")
	configFile := flag.String("config", "illustrator-mcp.toml", "Path to config file")
	flag.Parse()

	// .env is optional; values already in the environment win.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load version
	common.LoadVersionFromFile()

	// Setup logging — stdout is reserved for the MCP protocol stream.
	logger := common.NewLoggerFromConfig(cfg.Logging)

	logger.Info().
		Str("version", common.GetFullVersion()).
		Str("app", cfg.Illustrator.AppName).
		Str("region", cfg.Illustrator.CaptureRegion).
		Msg("Starting illustrator-mcp")

	bridge := illustrator.NewBridge(&cfg.Illustrator, logger, system.NewExecInvoker())

	mcpServer := newMCPServer(cfg.Server.Name, common.GetVersion(), bridge, logger)

	if *httpMode {
		port := cfg.Server.Port

		// Streamable HTTP transport — listens on configured port
		httpServer := server.NewStreamableHTTPServer(mcpServer,
			server.WithStateLess(true),
		)

		logger.Info().Str("port", port).Msg("Starting MCP Streamable HTTP")
		fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", port)

		go func() {
			if err := httpServer.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
				os.Exit(1)
			}
		}()

		// Wait for interrupt signal
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		logger.Info().Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("HTTP server shutdown failed")
		}

		logger.Info().Msg("Server stopped")
		return
	}

	// Stdio transport — reads stdin, writes stdout
	if err := server.ServeStdio(mcpServer); err != nil {
		fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
		os.Exit(1)
	}
}

// newMCPServer assembles the MCP server with both tools registered. The
// first middleware is outermost, so logged durations include time queued
// for the serial slot.
func newMCPServer(name, version string, bridge *illustrator.Bridge, logger *common.Logger) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(logInvocations(logger)),
		server.WithToolHandlerMiddleware(serializeInvocations()),
	)

	registerTools(mcpServer, bridge, logger)

	return mcpServer
}
