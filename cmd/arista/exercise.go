// ABOUTME: Exercise commands: add, list, delete.
// ABOUTME: Validates flags with the model rules before calling the service.
package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseDuration  int
	exerciseIntensity int
	exerciseAt        string
	exerciseLimit     int
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Log and review exercise sessions",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <category>",
	Short: "Log an exercise session",
	Long: `Log an exercise session.

CATEGORIES:
  football, swimming, running, walking, cycling, other

EXAMPLES:
  arista exercise add running --duration 30 --intensity 6
  arista exercise add swimming -d 45 -i 4 --at "2026-01-15 07:30"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, ok := models.ParseCategory(args[0])
		if !ok {
			return fmt.Errorf("%w (valid: %s)", apperr.InvalidInput("category"), categoryNames())
		}

		at, err := timeFlag(exerciseAt)
		if err != nil {
			return err
		}

		ex := models.NewExercise(category).
			WithStartDate(at).
			WithDuration(exerciseDuration).
			WithIntensity(exerciseIntensity)
		if err := ex.Validate(); err != nil {
			return err
		}
		if err := svc.AddExercise(ex); err != nil {
			return err
		}

		color.Green("✓ Added %s", ex.Category)
		fmt.Printf("  %s %d min, intensity %d, %s\n",
			color.New(color.Faint).Sprint(shortID(ex.ID)),
			ex.Duration, ex.Intensity, ex.StartDate.Format("2006-01-02 15:04"))
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercise sessions, newest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := svc.GetExercises()
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No exercises logged.")
			return nil
		}
		if exerciseLimit > 0 && len(list) > exerciseLimit {
			list = list[:exerciseLimit]
		}

		faint := color.New(color.Faint).SprintFunc()
		for _, e := range list {
			fmt.Printf("%s  %s %s  i%-2d  %s\n",
				faint(shortID(e.ID)),
				padRight(string(e.Category), 9),
				padRight(fmt.Sprintf("%dm", e.Duration), 5),
				e.Intensity,
				faint(humanize.Time(e.StartDate)))
		}
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise session by id or id prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := svc.GetExercises()
		if err != nil {
			return err
		}
		ids := make([]string, len(list))
		for i, e := range list {
			ids[i] = e.ID
		}
		id, err := resolveID(args[0], ids)
		if err != nil {
			return err
		}

		if err := svc.DeleteExercise(id); err != nil {
			return err
		}
		color.Yellow("✗ Deleted exercise %s", shortID(id))
		return nil
	},
}

func categoryNames() string {
	names := make([]string, len(models.AllCategories))
	for i, c := range models.AllCategories {
		names[i] = strings.ToLower(string(c))
	}
	return strings.Join(names, ", ")
}

func init() {
	exerciseAddCmd.Flags().IntVarP(&exerciseDuration, "duration", "d", 0, "duration in minutes (0-120)")
	exerciseAddCmd.Flags().IntVarP(&exerciseIntensity, "intensity", "i", 0, "intensity (0-10)")
	exerciseAddCmd.Flags().StringVar(&exerciseAt, "at", "", "start time (YYYY-MM-DD HH:MM, default now)")
	exerciseListCmd.Flags().IntVarP(&exerciseLimit, "limit", "n", 0, "show at most n sessions")

	exerciseCmd.AddCommand(exerciseAddCmd, exerciseListCmd, exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
