// ABOUTME: Storage-native records for users, exercises, and sleep sessions.
// ABOUTME: Exercise and sleep records carry a required reference to their user.
package storage

import "time"

// UserRecord is the persisted form of a user.
type UserRecord struct {
	ID        string    `json:"id" yaml:"id"`
	FirstName string    `json:"first_name" yaml:"first_name"`
	LastName  string    `json:"last_name" yaml:"last_name"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// ExerciseRecord is the persisted form of an exercise session.
type ExerciseRecord struct {
	ID              string    `json:"id" yaml:"id"`
	UserID          string    `json:"user_id" yaml:"user_id"`
	Category        string    `json:"category" yaml:"category"`
	StartDate       time.Time `json:"start_date" yaml:"start_date"`
	DurationMinutes int       `json:"duration_minutes" yaml:"duration_minutes"`
	Intensity       int       `json:"intensity" yaml:"intensity"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

// SleepRecord is the persisted form of a sleep session.
type SleepRecord struct {
	ID              string    `json:"id" yaml:"id"`
	UserID          string    `json:"user_id" yaml:"user_id"`
	StartDate       time.Time `json:"start_date" yaml:"start_date"`
	DurationMinutes int       `json:"duration_minutes" yaml:"duration_minutes"`
	Quality         int       `json:"quality" yaml:"quality"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

// Counts holds the number of records of each type.
type Counts struct {
	Users     int `json:"users"`
	Exercises int `json:"exercises"`
	Sleeps    int `json:"sleeps"`
}
