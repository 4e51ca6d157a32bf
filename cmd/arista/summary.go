// ABOUTME: Summary command showing totals and latest entries.
// ABOUTME: Renders the service aggregate with relative times.
package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/harperreed/arista/internal/models"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals and the latest exercise and sleep",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := svc.Summary()
		if err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		if sum.User != nil {
			fmt.Println(bold(sum.User.FullName()))
		} else {
			fmt.Println(faint("No user yet"))
		}
		fmt.Println()

		fmt.Printf("%s %s sessions, %s total\n",
			padRight("Exercise", 9),
			humanize.Comma(int64(sum.ExerciseCount)),
			models.FormatDuration(sum.TotalExerciseMinutes))
		if e := sum.LatestExercise; e != nil {
			fmt.Printf("%s latest: %s %dm %s\n", padRight("", 9), e.Category, e.Duration, faint(humanize.Time(e.StartDate)))
		}

		fmt.Printf("%s %s nights, %s total, avg quality %.1f\n",
			padRight("Sleep", 9),
			humanize.Comma(int64(sum.SleepCount)),
			models.FormatDuration(sum.TotalSleepMinutes),
			sum.AverageSleepQuality)
		if s := sum.LatestSleep; s != nil {
			fmt.Printf("%s latest: %s q%d %s\n", padRight("", 9), models.FormatDuration(s.Duration), s.Quality, faint(humanize.Time(s.StartDate)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
