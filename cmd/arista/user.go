// ABOUTME: User profile commands.
// ABOUTME: Creates and shows the single tracked user.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/arista/internal/models"
	"github.com/spf13/cobra"
)

var userID string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage the user profile",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <first-name> <last-name>",
	Short: "Create the user profile",
	Long: `Create the user profile. Arista tracks exactly one user.

EXAMPLES:
  arista user create Charlotte Razoul`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := models.ValidateUser(args[0], args[1]); err != nil {
			return err
		}
		if err := svc.CreateUser(args[0], args[1], userID); err != nil {
			return err
		}

		user, err := svc.GetUser()
		if err != nil {
			return err
		}
		color.Green("✓ Created user %s", user.FullName())
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(shortID(user.ID)))
		return nil
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the user profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := svc.GetUser()
		if err != nil {
			return err
		}
		if user == nil {
			fmt.Println("No user yet. Create one with 'arista user create <first> <last>'.")
			return nil
		}

		faint := color.New(color.Faint).SprintFunc()
		fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(user.FullName()), faint("("+user.Initials()+")"))
		fmt.Printf("  %s\n", faint(user.ID))
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userID, "id", "", "explicit user id (generated when empty)")
	userCmd.AddCommand(userCreateCmd, userShowCmd)
	rootCmd.AddCommand(userCmd)
}
