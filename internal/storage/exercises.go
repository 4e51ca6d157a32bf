// ABOUTME: Exercise CRUD operations for SQLite storage.
// ABOUTME: Checks the user reference and id uniqueness inside one transaction.
package storage

import (
	"database/sql"
	"fmt"
)

// CreateExercise stores a new exercise linked to an existing user.
func (d *DB) CreateExercise(e *ExerciseRecord) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ok, err := exists(tx, "users", e.UserID)
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	if !ok {
		return fmt.Errorf("create exercise: %w", ErrUserMissing)
	}

	taken, err := exists(tx, "exercises", e.ID)
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	if taken {
		return fmt.Errorf("create exercise %s: %w", e.ID, ErrConflict)
	}

	query := `
		INSERT INTO exercises (id, user_id, category, start_date, duration_minutes, intensity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.Exec(query,
		e.ID,
		e.UserID,
		e.Category,
		formatTime(e.StartDate),
		e.DurationMinutes,
		e.Intensity,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	return nil
}

// ListExercises retrieves all exercises.
// Results are sorted by StartDate descending (most recent first), ties by id.
func (d *DB) ListExercises() ([]*ExerciseRecord, error) {
	query := `
		SELECT id, user_id, category, start_date, duration_minutes, intensity, created_at
		FROM exercises
		ORDER BY start_date DESC, id ASC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []*ExerciseRecord{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// GetExercise retrieves the exercise with exactly this id.
func (d *DB) GetExercise(id string) (*ExerciseRecord, error) {
	query := `
		SELECT id, user_id, category, start_date, duration_minutes, intensity, created_at
		FROM exercises
		WHERE id = ?
	`
	e, err := scanExercise(d.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("get exercise %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

// DeleteExercise removes the exercise with exactly this id.
func (d *DB) DeleteExercise(id string) error {
	result, err := d.db.Exec("DELETE FROM exercises WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete exercise %s: %w", id, ErrNotFound)
	}

	return nil
}

// scanExercise scans one row into an ExerciseRecord.
// sql.ErrNoRows is returned unwrapped so callers can detect it.
func scanExercise(row rowScanner) (*ExerciseRecord, error) {
	var e ExerciseRecord
	var startDate, createdAt string

	err := row.Scan(&e.ID, &e.UserID, &e.Category, &startDate, &e.DurationMinutes, &e.Intensity, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan exercise: %w", err)
	}

	if e.StartDate, err = parseTime(startDate); err != nil {
		return nil, fmt.Errorf("parse exercise start_date %q: %w", startDate, err)
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse exercise created_at %q: %w", createdAt, err)
	}
	return &e, nil
}
