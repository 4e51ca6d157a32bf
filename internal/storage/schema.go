// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines users, exercises, and sleeps tables with user references.
package storage

// initSchema creates the schema if it does not exist yet.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		category TEXT NOT NULL,
		start_date TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		intensity INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sleeps (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		start_date TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		quality INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_exercises_start ON exercises(start_date DESC);
	CREATE INDEX IF NOT EXISTS idx_exercises_user ON exercises(user_id);
	CREATE INDEX IF NOT EXISTS idx_sleeps_start ON sleeps(start_date DESC);
	CREATE INDEX IF NOT EXISTS idx_sleeps_user ON sleeps(user_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
