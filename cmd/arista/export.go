// ABOUTME: CLI commands for exporting and importing arista data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/arista/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export arista data",
	Long: `Export arista data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export grouped by category (human-readable)
  markdown   Markdown tables (for documentation/sharing)

EXAMPLES:

  arista export json -o backup.json         # Save to file
  arista export yaml                        # Export as YAML
  arista export markdown --since 2026-01-01 # Export data from 2026 onward`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		switch format {
		case "json", "yaml", "markdown":
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		exported, err := storage.Export(store)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch format {
		case "json":
			data, err = storage.ExportJSON(exported)
		case "yaml":
			data, err = storage.ExportYAML(exported)
		case "markdown":
			var since *time.Time
			if exportSince != "" {
				t, perr := time.ParseInLocation("2006-01-02", exportSince, time.Local)
				if perr != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &t
			}
			data = []byte(storage.ExportMarkdown(exported, since))
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			return nil
		}
		fmt.Println(string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import arista data from JSON",
	Long: `Import arista data from a JSON backup file.

The user is created first, then exercises and sleep sessions.
Duplicate entries (same ID) cause an error.

EXAMPLES:

  arista import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := storage.ImportJSON(store, data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since date (YYYY-MM-DD, markdown only)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
