// ABOUTME: Aggregate view over the stored records.
// ABOUTME: Computes counts, latest entries, exercise minutes, and sleep quality.
package service

import (
	"time"

	"github.com/harperreed/arista/internal/models"
)

// Summary is a read-only overview of the tracker state.
type Summary struct {
	User                 *models.UserData     `json:"user,omitempty"`
	ExerciseCount        int                  `json:"exercise_count"`
	SleepCount           int                  `json:"sleep_count"`
	TotalExerciseMinutes int                  `json:"total_exercise_minutes"`
	TotalSleepMinutes    int                  `json:"total_sleep_minutes"`
	AverageSleepQuality  float64              `json:"average_sleep_quality"`
	LatestExercise       *models.ExerciseData `json:"latest_exercise,omitempty"`
	LatestSleep          *models.SleepData    `json:"latest_sleep,omitempty"`
}

// Summary aggregates the current user, exercises, and sleep sessions.
func (s *ModelService) Summary() (sum *Summary, err error) {
	defer s.observe("summary", time.Now(), &err)

	user, err := s.GetUser()
	if err != nil {
		return nil, err
	}
	exercises, err := s.GetExercises()
	if err != nil {
		return nil, err
	}
	sleeps, err := s.GetSleepSessions()
	if err != nil {
		return nil, err
	}

	sum = &Summary{
		User:          user,
		ExerciseCount: len(exercises),
		SleepCount:    len(sleeps),
	}
	for _, e := range exercises {
		sum.TotalExerciseMinutes += e.Duration
	}
	if len(exercises) > 0 {
		latest := exercises[0]
		sum.LatestExercise = &latest
	}

	quality := 0
	for _, sl := range sleeps {
		sum.TotalSleepMinutes += sl.Duration
		quality += sl.Quality
	}
	if len(sleeps) > 0 {
		latest := sleeps[0]
		sum.LatestSleep = &latest
		sum.AverageSleepQuality = float64(quality) / float64(len(sleeps))
	}
	return sum, nil
}
