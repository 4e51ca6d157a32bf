// ABOUTME: Sleep commands: add, list, delete.
// ABOUTME: Duration comes from --duration minutes or --hours/--minutes.
package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/models"
	"github.com/spf13/cobra"
)

var (
	sleepDuration int
	sleepHours    int
	sleepMinutes  int
	sleepQuality  int
	sleepAt       string
	sleepLimit    int
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Log and review sleep sessions",
}

var sleepAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a sleep session",
	Long: `Log a sleep session.

EXAMPLES:
  arista sleep add --hours 7 --minutes 30 --quality 8
  arista sleep add --duration 420 -q 6 --at "2026-01-14 23:00"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := timeFlag(sleepAt)
		if err != nil {
			return err
		}

		minutes := sleepDuration
		if cmd.Flags().Changed("hours") || cmd.Flags().Changed("minutes") {
			if cmd.Flags().Changed("duration") {
				return fmt.Errorf("use either --duration or --hours/--minutes, not both")
			}
			if sleepMinutes < 0 || sleepMinutes > 59 {
				return apperr.InvalidInput("minutes")
			}
			minutes = sleepHours*60 + sleepMinutes
		}

		s := models.NewSleep().
			WithStartDate(at).
			WithDuration(minutes).
			WithQuality(sleepQuality)
		if err := s.Validate(); err != nil {
			return err
		}
		if err := svc.AddSleep(s); err != nil {
			return err
		}

		color.Green("✓ Added sleep %s", models.FormatDuration(s.Duration))
		fmt.Printf("  %s quality %d, from %s\n",
			color.New(color.Faint).Sprint(shortID(s.ID)),
			s.Quality, s.StartDate.Format("2006-01-02 15:04"))
		return nil
	},
}

var sleepListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List sleep sessions, newest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := svc.GetSleepSessions()
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No sleep logged.")
			return nil
		}
		if sleepLimit > 0 && len(list) > sleepLimit {
			list = list[:sleepLimit]
		}

		faint := color.New(color.Faint).SprintFunc()
		for _, s := range list {
			fmt.Printf("%s  %s  q%-2d  %s\n",
				faint(shortID(s.ID)),
				padRight(models.FormatDuration(s.Duration), 8),
				s.Quality,
				faint(humanize.Time(s.StartDate)))
		}
		return nil
	},
}

var sleepDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a sleep session by id or id prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := svc.GetSleepSessions()
		if err != nil {
			return err
		}
		ids := make([]string, len(list))
		for i, s := range list {
			ids[i] = s.ID
		}
		id, err := resolveID(args[0], ids)
		if err != nil {
			return err
		}

		if err := svc.DeleteSleep(id); err != nil {
			return err
		}
		color.Yellow("✗ Deleted sleep %s", shortID(id))
		return nil
	},
}

func init() {
	sleepAddCmd.Flags().IntVar(&sleepDuration, "duration", 0, "duration in minutes (max 1499)")
	sleepAddCmd.Flags().IntVar(&sleepHours, "hours", 0, "hours slept")
	sleepAddCmd.Flags().IntVar(&sleepMinutes, "minutes", 0, "extra minutes slept (0-59)")
	sleepAddCmd.Flags().IntVarP(&sleepQuality, "quality", "q", 0, "quality (0-10)")
	sleepAddCmd.Flags().StringVar(&sleepAt, "at", "", "bedtime (YYYY-MM-DD HH:MM, default now)")
	sleepListCmd.Flags().IntVarP(&sleepLimit, "limit", "n", 0, "show at most n sessions")

	sleepCmd.AddCommand(sleepAddCmd, sleepListCmd, sleepDeleteCmd)
	rootCmd.AddCommand(sleepCmd)
}
