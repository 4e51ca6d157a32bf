// ABOUTME: Data migration between arista storage backends.
// ABOUTME: Copies the user, exercises, and sleep sessions from source to destination.

package storage

import (
	"errors"
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Users     int
	Exercises int
	Sleeps    int
}

// MigrateData copies all data from src to dst storage.
// The user is copied first so that every exercise and sleep reference
// resolves in the destination. The destination should be empty
// before calling this function.
func MigrateData(src, dst Store) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	user, err := src.FirstUser()
	switch {
	case errors.Is(err, ErrNotFound):
		// Nothing can reference a missing user.
	case err != nil:
		return nil, fmt.Errorf("get source user: %w", err)
	default:
		if err := dst.CreateUser(user); err != nil {
			return nil, fmt.Errorf("create user %s: %w", user.ID, err)
		}
		summary.Users++
	}

	exercises, err := src.ListExercises()
	if err != nil {
		return nil, fmt.Errorf("list source exercises: %w", err)
	}
	for _, e := range exercises {
		if err := dst.CreateExercise(e); err != nil {
			return nil, fmt.Errorf("create exercise %s: %w", e.ID, err)
		}
		summary.Exercises++
	}

	sleeps, err := src.ListSleeps()
	if err != nil {
		return nil, fmt.Errorf("list source sleeps: %w", err)
	}
	for _, s := range sleeps {
		if err := dst.CreateSleep(s); err != nil {
			return nil, fmt.Errorf("create sleep %s: %w", s.ID, err)
		}
		summary.Sleeps++
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
