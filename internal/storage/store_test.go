// ABOUTME: Shared test helpers for storage backends.
// ABOUTME: Runs each test against SQLite and Badger so both honor the Store contract.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

type backend struct {
	name string
	open func(t *testing.T) Store
}

func backends() []backend {
	return []backend{
		{"sqlite", func(t *testing.T) Store {
			db, err := Open(filepath.Join(t.TempDir(), "arista.db"))
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			t.Cleanup(func() { _ = db.Close() })
			return db
		}},
		{"badger", func(t *testing.T) Store {
			kv, err := OpenKV(filepath.Join(t.TempDir(), "kv"), nil)
			if err != nil {
				t.Fatalf("OpenKV failed: %v", err)
			}
			t.Cleanup(func() { _ = kv.Close() })
			return kv
		}},
	}
}

func forEachBackend(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			fn(t, b.open(t))
		})
	}
}

func newUser(t *testing.T, s Store) *UserRecord {
	t.Helper()
	u := &UserRecord{
		ID:        uuid.NewString(),
		FirstName: "Charlotte",
		LastName:  "Razoul",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return u
}

func exerciseAt(userID string, start time.Time) *ExerciseRecord {
	return &ExerciseRecord{
		ID:              uuid.NewString(),
		UserID:          userID,
		Category:        "Running",
		StartDate:       start,
		DurationMinutes: 30,
		Intensity:       5,
		CreatedAt:       time.Now().UTC(),
	}
}

func sleepAt(userID string, start time.Time) *SleepRecord {
	return &SleepRecord{
		ID:              uuid.NewString(),
		UserID:          userID,
		StartDate:       start,
		DurationMinutes: 450,
		Quality:         7,
		CreatedAt:       time.Now().UTC(),
	}
}
