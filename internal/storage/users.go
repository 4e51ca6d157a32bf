// ABOUTME: User CRUD operations for SQLite storage.
// ABOUTME: Implements UserRepository; the first user is fetched with LIMIT 1.
package storage

import (
	"database/sql"
	"fmt"
)

// CreateUser stores a new user in the database.
func (d *DB) CreateUser(u *UserRecord) error {
	query := `
		INSERT INTO users (id, first_name, last_name, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		u.ID,
		u.FirstName,
		u.LastName,
		formatTime(u.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FirstUser returns the first stored user ordered by id.
func (d *DB) FirstUser() (*UserRecord, error) {
	query := `
		SELECT id, first_name, last_name, created_at
		FROM users
		ORDER BY id
		LIMIT 1
	`
	var u UserRecord
	var createdAt string

	err := d.db.QueryRow(query).Scan(&u.ID, &u.FirstName, &u.LastName, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse user created_at %q: %w", createdAt, err)
	}
	return &u, nil
}
