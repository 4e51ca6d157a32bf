// ABOUTME: Conversions between DTOs and storage records.
// ABOUTME: Also maps storage sentinels onto application error kinds.
package service

import (
	"errors"
	"time"

	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/models"
	"github.com/harperreed/arista/internal/storage"
)

func userFromRecord(r *storage.UserRecord) *models.UserData {
	return &models.UserData{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

func exerciseRecord(d models.ExerciseData, userID string, now time.Time) *storage.ExerciseRecord {
	return &storage.ExerciseRecord{
		ID:              d.ID,
		UserID:          userID,
		Category:        string(d.Category),
		StartDate:       d.StartDate,
		DurationMinutes: d.Duration,
		Intensity:       d.Intensity,
		CreatedAt:       now,
	}
}

func exerciseFromRecord(r *storage.ExerciseRecord) models.ExerciseData {
	return models.ExerciseData{
		ID:        r.ID,
		Category:  models.Category(r.Category),
		StartDate: r.StartDate,
		Duration:  r.DurationMinutes,
		Intensity: r.Intensity,
	}
}

func sleepRecord(d models.SleepData, userID string, now time.Time) *storage.SleepRecord {
	return &storage.SleepRecord{
		ID:              d.ID,
		UserID:          userID,
		StartDate:       d.StartDate,
		DurationMinutes: d.Duration,
		Quality:         d.Quality,
		CreatedAt:       now,
	}
}

func sleepFromRecord(r *storage.SleepRecord) models.SleepData {
	return models.SleepData{
		ID:        r.ID,
		StartDate: r.StartDate,
		Duration:  r.DurationMinutes,
		Quality:   r.Quality,
	}
}

// createError maps a failed insert. A vanished user reference surfaces as
// NoUserFound, anything else as a storage failure.
func createError(err error) error {
	if errors.Is(err, storage.ErrUserMissing) {
		return apperr.ErrNoUserFound
	}
	return apperr.Storage(err)
}

// deleteError maps a failed delete, turning a miss into notFound.
func deleteError(err error, notFound *apperr.Error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return notFound
	}
	return apperr.Storage(err)
}
