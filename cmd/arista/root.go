// ABOUTME: Root Cobra command for arista CLI.
// ABOUTME: Builds config, logger, store, and service facade via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harperreed/arista/internal/config"
	"github.com/harperreed/arista/internal/logging"
	"github.com/harperreed/arista/internal/observability"
	"github.com/harperreed/arista/internal/service"
	"github.com/harperreed/arista/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	flagBackend  string
	flagDataDir  string
	flagLogLevel string

	cfg      *config.Config
	logger   *log.Logger
	store    storage.Store
	svc      *service.ModelService
	registry *prometheus.Registry
)

var rootCmd = &cobra.Command{
	Use:   "arista",
	Short: "Personal activity tracker for exercise and sleep",
	Long: `Arista tracks one person's exercise sessions and sleep.

WHAT IT TRACKS:

  Exercise   Football, Swimming, Running, Walking, Cycling, Other
             with duration (0-120 min) and intensity (0-10)
  Sleep      bedtime, duration (up to 24h 59m), and quality (0-10)

QUICK START:

  $ arista user create Charlotte Razoul          # Create your profile
  $ arista exercise add running --duration 30    # Log a run
  $ arista sleep add --hours 7 --minutes 30 -q 8 # Log last night
  $ arista summary                               # See your totals

MCP INTEGRATION:

  Run 'arista mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "arista": { "command": "arista", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  SQLite at ~/.local/share/arista/arista.db by default. Set "backend" to
  "badger" in ~/.config/arista/config.json (or ARISTA_BACKEND=badger) for
  the embedded key-value store.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage for commands that don't need it
		switch cmd.Name() {
		case "help", "version", "install-skill", "completion":
			return nil
		}
		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = logging.New(cfg.GetLogLevel(), nil)
	if err != nil {
		return err
	}

	store, err = cfg.OpenStorage(logger)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
	}
	logger.Debug("storage opened", "backend", cfg.GetBackend(), "dir", cfg.GetDataDir())

	registry = prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	svc = service.NewFromStore(store,
		service.WithLogger(logger),
		service.WithMetrics(metrics),
	)
	return nil
}

func teardown() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	svc = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite or badger")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/arista)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}
