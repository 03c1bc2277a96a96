package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/cinta"
	"github.com/aretw0/cinta/internal/adapters/mcp"
	"github.com/aretw0/cinta/internal/logging"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the engine as an MCP Server over Standard Input/Output.
This allows AI agents (like Claude Desktop) to run inputs through the machine
and inspect its transition table as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := globalOptions(cmd)

		// Ensure logs don't corrupt JSON-RPC on Stdout
		logger := logging.New(slog.LevelDebug)
		slog.SetDefault(logger)
		log.SetOutput(os.Stderr)

		engineOpts := []cinta.Option{cinta.WithLogger(logger)}
		if opts.MaxSteps > 0 {
			engineOpts = append(engineOpts, cinta.WithMaxSteps(opts.MaxSteps))
		}

		engine, err := cinta.Load(opts.FilePath, engineOpts...)
		if err != nil {
			log.Fatalf("Error initializing engine: %v", err)
		}

		srv := mcp.NewServer(engine)

		slog.Info("Starting Cinta MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
