// ABOUTME: CLI command for copying data between storage backends.
// ABOUTME: Moves the user, exercises, and sleep from the active store to another.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/arista/internal/config"
	"github.com/harperreed/arista/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo     string
	migrateToDir  string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data to another storage backend",
	Long: `Copy all arista data from the active backend into another one.

The destination must be empty. The source is left untouched; switch
backends afterwards by editing ~/.config/arista/config.json or setting
ARISTA_BACKEND.

USAGE:

  arista migrate --to badger --dry-run   # Preview what would be copied
  arista migrate --to badger             # Copy SQLite data into Badger
  arista --backend badger migrate --to sqlite --to-dir /tmp/arista`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := &config.Config{Backend: migrateTo, DataDir: migrateToDir}
		if dst.DataDir == "" {
			dst.DataDir = cfg.GetDataDir()
		}
		if err := dst.Validate(); err != nil {
			return err
		}

		srcPath := config.StoragePath(cfg.GetBackend(), cfg.GetDataDir())
		dstPath := config.StoragePath(dst.GetBackend(), dst.GetDataDir())
		if srcPath == dstPath {
			return fmt.Errorf("source and destination are the same: %s", srcPath)
		}
		if err := ensureEmptyDestination(dst.GetBackend(), dstPath); err != nil {
			return err
		}

		counts, err := store.Counts()
		if err != nil {
			return fmt.Errorf("failed to count source data: %w", err)
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Println()
			fmt.Printf("Would copy from %s (%s)\n", srcPath, cfg.GetBackend())
			fmt.Printf("          to   %s (%s)\n", dstPath, dst.GetBackend())
			fmt.Printf("  %d user, %d exercises, %d sleep sessions\n", counts.Users, counts.Exercises, counts.Sleeps)
			return nil
		}

		target, err := dst.OpenStorage(logger)
		if err != nil {
			return fmt.Errorf("failed to open destination: %w", err)
		}

		summary, err := storage.MigrateData(store, target)
		if cerr := target.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close destination: %w", cerr)
		}
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated to %s", dstPath)
		fmt.Printf("  %d user, %d exercises, %d sleep sessions\n", summary.Users, summary.Exercises, summary.Sleeps)
		return nil
	},
}

// ensureEmptyDestination refuses to write into existing data.
func ensureEmptyDestination(backend, path string) error {
	if backend == config.BackendBadger {
		nonEmpty, err := storage.IsDirNonEmpty(path)
		if err != nil {
			return err
		}
		if nonEmpty {
			return fmt.Errorf("destination %s is not empty", path)
		}
		return nil
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		return fmt.Errorf("destination %s already exists", path)
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("failed to check destination: %w", err)
	}
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend: sqlite or badger")
	migrateCmd.Flags().StringVar(&migrateToDir, "to-dir", "", "destination data directory (default: current data dir)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	_ = migrateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateCmd)
}
