// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server, optionally exposing Prometheus metrics.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harperreed/arista/internal/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var mcpMetricsAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to stderr.

CONFIGURATION:

  {
    "mcpServers": {
      "arista": {
        "command": "arista",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_user          Get the user profile
  create_user       Create the user profile
  add_exercise      Log an exercise session
  list_exercises    List recent exercise sessions
  delete_exercise   Delete an exercise session
  add_sleep         Log a sleep session
  list_sleep        List recent sleep sessions
  delete_sleep      Delete a sleep session
  summary           Totals and latest entries

AVAILABLE RESOURCES:

  arista://profile            User profile
  arista://exercises/recent   Recent exercise sessions
  arista://sleep/recent       Recent sleep sessions

METRICS:

  --metrics-addr :9090 serves Prometheus metrics at /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(svc, logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		if mcpMetricsAddr != "" {
			srv := metricsServer(mcpMetricsAddr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("metrics server stopped", "addr", mcpMetricsAddr, "err", err)
				}
			}()
			defer func() {
				shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
				defer done()
				_ = srv.Shutdown(shutdownCtx)
			}()
			logger.Info("serving metrics", "addr", mcpMetricsAddr)
		}

		return server.Serve(ctx)
	},
}

func metricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func init() {
	mcpCmd.Flags().StringVar(&mcpMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	rootCmd.AddCommand(mcpCmd)
}
