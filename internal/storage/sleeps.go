// ABOUTME: Sleep session CRUD operations for SQLite storage.
// ABOUTME: Mirrors the exercise operations with quality in place of category/intensity.
package storage

import (
	"database/sql"
	"fmt"
)

// CreateSleep stores a new sleep session linked to an existing user.
func (d *DB) CreateSleep(s *SleepRecord) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create sleep: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ok, err := exists(tx, "users", s.UserID)
	if err != nil {
		return fmt.Errorf("create sleep: %w", err)
	}
	if !ok {
		return fmt.Errorf("create sleep: %w", ErrUserMissing)
	}

	taken, err := exists(tx, "sleeps", s.ID)
	if err != nil {
		return fmt.Errorf("create sleep: %w", err)
	}
	if taken {
		return fmt.Errorf("create sleep %s: %w", s.ID, ErrConflict)
	}

	query := `
		INSERT INTO sleeps (id, user_id, start_date, duration_minutes, quality, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = tx.Exec(query,
		s.ID,
		s.UserID,
		formatTime(s.StartDate),
		s.DurationMinutes,
		s.Quality,
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create sleep: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create sleep: %w", err)
	}
	return nil
}

// ListSleeps retrieves all sleep sessions.
// Results are sorted by StartDate descending (most recent first), ties by id.
func (d *DB) ListSleeps() ([]*SleepRecord, error) {
	query := `
		SELECT id, user_id, start_date, duration_minutes, quality, created_at
		FROM sleeps
		ORDER BY start_date DESC, id ASC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list sleeps: %w", err)
	}
	defer rows.Close()

	sleeps := []*SleepRecord{}
	for rows.Next() {
		s, err := scanSleep(rows)
		if err != nil {
			return nil, err
		}
		sleeps = append(sleeps, s)
	}
	return sleeps, rows.Err()
}

// GetSleep retrieves the sleep session with exactly this id.
func (d *DB) GetSleep(id string) (*SleepRecord, error) {
	query := `
		SELECT id, user_id, start_date, duration_minutes, quality, created_at
		FROM sleeps
		WHERE id = ?
	`
	s, err := scanSleep(d.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("get sleep %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

// DeleteSleep removes the sleep session with exactly this id.
func (d *DB) DeleteSleep(id string) error {
	result, err := d.db.Exec("DELETE FROM sleeps WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete sleep: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete sleep: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete sleep %s: %w", id, ErrNotFound)
	}

	return nil
}

func scanSleep(row rowScanner) (*SleepRecord, error) {
	var s SleepRecord
	var startDate, createdAt string

	err := row.Scan(&s.ID, &s.UserID, &startDate, &s.DurationMinutes, &s.Quality, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan sleep: %w", err)
	}

	if s.StartDate, err = parseTime(startDate); err != nil {
		return nil, fmt.Errorf("parse sleep start_date %q: %w", startDate, err)
	}
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse sleep created_at %q: %w", createdAt, err)
	}
	return &s, nil
}
