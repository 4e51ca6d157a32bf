// ABOUTME: Seed command writing first-run demo data.
// ABOUTME: No-op when a user already exists.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo user and five nights of sleep",
	Long: `Create the default demo data on an empty store: the user
Charlotte Razoul and five randomized sleep sessions on previous nights.

Nothing is written if a user already exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		applied, err := svc.ApplyDefaultData(nil)
		if err != nil {
			return err
		}
		if !applied {
			fmt.Println("A user already exists; nothing seeded.")
			return nil
		}
		color.Green("✓ Seeded demo data")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
