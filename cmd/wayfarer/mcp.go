package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/wayfarer"
	"github.com/aretw0/wayfarer/internal/adapters/mcp"
	"github.com/aretw0/wayfarer/internal/cli"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the planner as an MCP Server.
This allows AI agents (like Claude Desktop) to plan trips as a tool call.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := resolveOptions(cmd)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		logger := cli.CreateLogger(opts.Debug, opts.Config.Log)
		planner, err := cli.CreatePlanner(opts, logger)
		if err != nil {
			log.Fatalf("Error initializing planner: %v", err)
		}

		mcpOpts := []mcp.Option{mcp.WithLogger(logger)}
		if lister, ok := planner.Catalog().(mcp.DestinationLister); ok {
			mcpOpts = append(mcpOpts, mcp.WithDestinationLister(lister))
		}
		srv := mcp.NewServer(planner, wayfarer.Version, mcpOpts...)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("Starting Wayfarer MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				logger.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			logger.Info("Starting Wayfarer MCP Server (SSE)", "port", port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				if err != http.ErrServerClosed {
					logger.Error("MCP Server execution failed", "error", err)
					os.Exit(1)
				}
			}
			logger.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
