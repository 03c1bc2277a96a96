package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/cinta"
	httpAdapter "github.com/aretw0/cinta/internal/adapters/http"
	"github.com/aretw0/cinta/internal/logging"
	"github.com/aretw0/cinta/pkg/machine"
	"github.com/aretw0/cinta/pkg/observability"
	"github.com/aretw0/cinta/pkg/runner"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Starts the engine in server mode, exposing run and batch endpoints plus
machine introspection and Prometheus metrics over a JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := globalOptions(cmd)

		cfg, err := httpAdapter.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}

		logger := logging.New(slog.LevelInfo)
		metrics := observability.NewMetrics(nil)

		engineOpts := []cinta.Option{
			cinta.WithLogger(logger),
			cinta.WithLifecycleHooks(machine.JoinHooks(metrics.Hooks(), observability.LoggingHooks(logger))),
		}
		if opts.MaxSteps > 0 {
			engineOpts = append(engineOpts, cinta.WithMaxSteps(opts.MaxSteps))
		}

		engine, err := cinta.Load(opts.FilePath, engineOpts...)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		batch := runner.New(engine,
			runner.WithWorkers(cfg.Workers),
			runner.WithLogger(logger),
		)
		handler := httpAdapter.NewHandler(engine, batch)

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Cinta Server on %s\n", srv.Addr)
			fmt.Printf("Serving machine from: %s\n", opts.FilePath)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Cinta Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (overrides CINTA_HTTP_ADDR)")
}
