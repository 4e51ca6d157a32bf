// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Runs commands end to end against temp data directories.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "date and time with space", input: "2026-01-31 08:30"},
		{name: "date and time with T", input: "2026-01-31T08:30"},
		{name: "date only", input: "2026-01-31"},
		{name: "RFC3339", input: "2026-01-31T08:30:00Z"},
		{name: "RFC3339 with offset", input: "2026-01-31T08:30:00+05:00"},
		{name: "invalid format", input: "31-01-2026", wantErr: true},
		{name: "invalid random string", input: "not a date", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.False(t, result.IsZero())
		})
	}
}

func TestParseTimeValues(t *testing.T) {
	got, err := parseTime("2026-01-31 08:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 31, 8, 30, 0, 0, time.Local), got)

	got, err = parseTime("2026-01-31T08:30:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 1, 31, 8, 30, 0, 0, time.UTC)))
}

func TestTimeFlagDefaultsToNow(t *testing.T) {
	before := time.Now()
	got, err := timeFlag("")
	require.NoError(t, err)
	assert.False(t, got.Before(before))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hello", truncate("hello", 5))
	assert.Equal(t, "hel...", truncate("hello world", 6))
	assert.Equal(t, "he", truncate("hello", 2))
	assert.Equal(t, "", truncate("", 3))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	assert.Equal(t, "   ", padRight("", 3))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", shortID("1234567890abcdef"))
	assert.Equal(t, "abc", shortID("abc"))
}

func TestResolveID(t *testing.T) {
	ids := []string{"aaaa1111", "aaaa2222", "bbbb3333"}

	id, err := resolveID("bbbb", ids)
	require.NoError(t, err)
	assert.Equal(t, "bbbb3333", id)

	id, err = resolveID("aaaa2222", ids)
	require.NoError(t, err)
	assert.Equal(t, "aaaa2222", id)

	id, err = resolveID("zzzz", ids)
	require.NoError(t, err)
	assert.Equal(t, "zzzz", id, "unmatched prefixes pass through")

	_, err = resolveID("aaaa", ids)
	assert.ErrorContains(t, err, "ambiguous")

	id, err = resolveID("", []string{"3f2a-only-exercise"})
	require.NoError(t, err)
	assert.Empty(t, id, "an empty argument never expands to a record")
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"user", "exercise", "sleep", "summary", "seed", "export", "import", "migrate", "mcp", "install-skill"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, cmd.Name())
		}
	}

	for _, path := range [][]string{
		{"user", "create"}, {"user", "show"},
		{"exercise", "add"}, {"exercise", "list"}, {"exercise", "delete"},
		{"sleep", "add"}, {"sleep", "list"}, {"sleep", "delete"},
	} {
		cmd, _, err := rootCmd.Find(path)
		if assert.NoError(t, err, path) {
			assert.Equal(t, path[1], cmd.Name())
		}
	}
}

func TestCommandAliases(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"ex", "ls"})
	require.NoError(t, err)
	assert.Equal(t, exerciseListCmd, cmd)

	cmd, _, err = rootCmd.Find([]string{"sleep", "rm"})
	require.NoError(t, err)
	assert.Equal(t, sleepDeleteCmd, cmd)
}

func TestExportCmdValidArgs(t *testing.T) {
	assert.ElementsMatch(t, []string{"json", "yaml", "markdown"}, exportCmd.ValidArgs)
}

// resetFlags restores every flag under cmd to its default, clearing Changed.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setupTestCLI points config and data at temp dirs and returns the data dir.
func setupTestCLI(t *testing.T) string {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ARISTA_BACKEND", "")
	t.Setenv("ARISTA_DATA_DIR", "")
	t.Setenv("ARISTA_LOG_LEVEL", "")
	return t.TempDir()
}

// runCLI executes args against dataDir and closes the store even when the
// command fails, since cobra skips post-run hooks on error.
func runCLI(t *testing.T, dataDir string, args ...string) error {
	t.Helper()

	resetFlags(rootCmd)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--data-dir", dataDir}, args...))

	err := rootCmd.Execute()
	require.NoError(t, teardown())
	return err
}

// openSQLite opens the store a previous command wrote to.
func openSQLite(t *testing.T, dataDir string) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(dataDir, "arista.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUserCreateAndShow(t *testing.T) {
	dir := setupTestCLI(t)

	require.NoError(t, runCLI(t, dir, "user", "show"))
	require.NoError(t, runCLI(t, dir, "user", "create", "Charlotte", "Razoul", "--id", "u-1"))
	require.NoError(t, runCLI(t, dir, "user", "show"))

	err := runCLI(t, dir, "user", "create", "Other", "Person")
	assert.ErrorIs(t, err, apperr.ErrUserExists)

	user, err := openSQLite(t, dir).FirstUser()
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "Charlotte", user.FirstName)
}

func TestUserCreateBlankName(t *testing.T) {
	dir := setupTestCLI(t)

	err := runCLI(t, dir, "user", "create", " ", "Razoul")
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestExerciseAddCmd(t *testing.T) {
	dir := setupTestCLI(t)
	require.NoError(t, runCLI(t, dir, "user", "create", "Charlotte", "Razoul"))

	require.NoError(t, runCLI(t, dir, "exercise", "add", "RUNNING", "-d", "30", "-i", "6", "--at", "2026-01-15 07:30"))
	require.NoError(t, runCLI(t, dir, "exercise", "list", "-n", "5"))

	list, err := openSQLite(t, dir).ListExercises()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Running", list[0].Category)
	assert.Equal(t, 30, list[0].DurationMinutes)
	assert.Equal(t, 6, list[0].Intensity)
	assert.True(t, list[0].StartDate.Equal(time.Date(2026, 1, 15, 7, 30, 0, 0, time.Local)))
}

func TestExerciseAddRequiresUser(t *testing.T) {
	dir := setupTestCLI(t)

	err := runCLI(t, dir, "exercise", "add", "walking", "-d", "10")
	assert.ErrorIs(t, err, apperr.ErrNoUserFound)
}

func TestExerciseAddRejectsInput(t *testing.T) {
	dir := setupTestCLI(t)
	require.NoError(t, runCLI(t, dir, "user", "create", "Charlotte", "Razoul"))

	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{"unknown category", []string{"exercise", "add", "climbing"}, "category"},
		{"duration too long", []string{"exercise", "add", "running", "-d", "121"}, "duration"},
		{"negative intensity", []string{"exercise", "add", "running", "--intensity=-1"}, "intensity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCLI(t, dir, tt.args...)
			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperr.KindInvalidInput, appErr.Kind)
			assert.Equal(t, tt.field, appErr.Field)
		})
	}

	err := runCLI(t, dir, "exercise", "add", "running", "--at", "yesterday")
	assert.ErrorContains(t, err, "invalid time format")

	list, err := openSQLite(t, dir).ListExercises()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExerciseDeleteByPrefix(t *testing.T) {
	dir := setupTestCLI(t)
	require.NoError(t, runCLI(t, dir, "user", "create", "Charlotte", "Razoul"))
	require.NoError(t, runCLI(t, dir, "exercise", "add", "cycling", "-d", "45"))

	db := openSQLite(t, dir)
	list, err := db.ListExercises()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, db.Close())

	require.NoError(t, runCLI(t, dir, "exercise", "delete", list[0].ID[:8]))

	err = runCLI(t, dir, "exercise", "delete", list[0].ID)
	assert.ErrorIs(t, err, apperr.ErrExerciseNotFound)

	remaining, err := openSQLite(t, dir).ListExercises()
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestSleepAddHoursMinutes(t *testing.T) {
	dir := setupTestCLI(t)
	require.NoError(t, runCLI(t, dir, "user", "create", "Charlotte", "Razoul"))

	require.NoError(t, runCLI(t, dir, "sleep", "add", "--hours", "7", "--minutes", "30", "-q", "8", "--at", "2026-01-14 23:00"))
	require.NoError(t, runCLI(t, dir, "sleep", "add", "--duration", "420", "-q", "6", "--at", "2026-01-13 23:00"))
	require.NoError(t, runCLI(t, dir, "sleep", "list"))

	list, err := openSQLite(t, dir).ListSleeps()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 450, list[0].DurationMinutes)
	assert.Equal(t, 8, list[0].Quality)
	assert.Equal(t, 420, list[1].DurationMinutes)
}

func TestSleepAddRejectsInput(t *testing.T) {
	dir := setupTestCLI(t)
	require.NoError(t, runCLI(t, dir, "user", "create", "Charlotte", "Razoul"))

	err := runCLI(t, dir, "sleep", "add", "--duration", "60", "--hours", "1")
	assert.ErrorContains(t, err, "not both")

	err = runCLI(t, dir, "sleep", "add", "--hours", "7", "--minutes", "60")
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	err = runCLI(t, dir, "sleep", "add", "--hours", "25")
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	err = runCLI(t, dir, "sleep", "add", "-q", "11")
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestExerciseDeleteEmptyID(t *testing.T) {
	dir := setupTestCLI(t)
	require.NoError(t, runCLI(t, dir, "user", "create", "Charlotte", "Razoul"))
	require.NoError(t, runCLI(t, dir, "exercise", "add", "running", "-d", "30"))

	err := runCLI(t, dir, "exercise", "delete", "")
	assert.ErrorIs(t, err, apperr.ErrExerciseNotFound)

	list, err := openSQLite(t, dir).ListExercises()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestImportIntoPopulatedStore(t *testing.T) {
	dir := setupTestCLI(t)
	require.NoError(t, runCLI(t, dir, "user", "create", "Charlotte", "Razoul"))
	out := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, runCLI(t, dir, "export", "json", "-o", out))

	other := setupTestCLI(t)
	require.NoError(t, runCLI(t, other, "user", "create", "John", "Doe"))
	assert.ErrorContains(t, runCLI(t, other, "import", out), "import failed")

	counts, err := openSQLite(t, other).Counts()
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Users)
}

func TestSleepDeleteNotFound(t *testing.T) {
	dir := setupTestCLI(t)
	require.NoError(t, runCLI(t, dir, "user", "create", "Charlotte", "Razoul"))

	err := runCLI(t, dir, "sleep", "delete", "nonexistent")
	assert.ErrorIs(t, err, apperr.ErrSleepNotFound)
}

func TestSeedAndSummary(t *testing.T) {
	dir := setupTestCLI(t)

	require.NoError(t, runCLI(t, dir, "seed"))
	require.NoError(t, runCLI(t, dir, "seed"))
	require.NoError(t, runCLI(t, dir, "summary"))

	counts, err := openSQLite(t, dir).Counts()
	require.NoError(t, err)
	assert.Equal(t, storage.Counts{Users: 1, Exercises: 0, Sleeps: 5}, counts)
}

func TestSummaryEmpty(t *testing.T) {
	dir := setupTestCLI(t)
	assert.NoError(t, runCLI(t, dir, "summary"))
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := setupTestCLI(t)
	require.NoError(t, runCLI(t, dir, "user", "create", "Charlotte", "Razoul"))
	require.NoError(t, runCLI(t, dir, "exercise", "add", "swimming", "-d", "40", "-i", "5"))
	require.NoError(t, runCLI(t, dir, "sleep", "add", "--duration", "480", "-q", "7"))

	out := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, runCLI(t, dir, "export", "json", "-o", out))
	_, err := os.Stat(out)
	require.NoError(t, err)

	yamlOut := filepath.Join(t.TempDir(), "backup.yaml")
	require.NoError(t, runCLI(t, dir, "export", "yaml", "-o", yamlOut))

	mdOut := filepath.Join(t.TempDir(), "backup.md")
	require.NoError(t, runCLI(t, dir, "export", "markdown", "--since", "2000-01-01", "-o", mdOut))
	md, err := os.ReadFile(mdOut)
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Arista Export")
	assert.Contains(t, string(md), "Swimming")

	other := t.TempDir()
	require.NoError(t, runCLI(t, other, "import", out))

	counts, err := openSQLite(t, other).Counts()
	require.NoError(t, err)
	assert.Equal(t, storage.Counts{Users: 1, Exercises: 1, Sleeps: 1}, counts)

	err = runCLI(t, other, "import", out)
	assert.ErrorContains(t, err, "import failed")
}

func TestExportRejectsBadInput(t *testing.T) {
	dir := setupTestCLI(t)

	assert.ErrorContains(t, runCLI(t, dir, "export", "csv"), "unknown format")
	assert.ErrorContains(t, runCLI(t, dir, "export", "markdown", "--since", "Jan 1"), "invalid date format")
	assert.ErrorContains(t, runCLI(t, dir, "import", filepath.Join(dir, "missing.json")), "failed to read file")
}

func TestBadgerBackendFlag(t *testing.T) {
	dir := setupTestCLI(t)

	require.NoError(t, runCLI(t, dir, "--backend", "badger", "user", "create", "Charlotte", "Razoul"))
	require.NoError(t, runCLI(t, dir, "--backend", "badger", "exercise", "add", "football", "-d", "90", "-i", "9"))

	kv, err := storage.OpenKV(filepath.Join(dir, "kv"), nil)
	require.NoError(t, err)
	defer kv.Close()

	counts, err := kv.Counts()
	require.NoError(t, err)
	assert.Equal(t, storage.Counts{Users: 1, Exercises: 1, Sleeps: 0}, counts)
}

func TestUnknownBackendRejected(t *testing.T) {
	dir := setupTestCLI(t)
	assert.Error(t, runCLI(t, dir, "--backend", "postgres", "summary"))
}

func TestMigrateCmd(t *testing.T) {
	dir := setupTestCLI(t)
	require.NoError(t, runCLI(t, dir, "seed"))
	require.NoError(t, runCLI(t, dir, "exercise", "add", "walking", "-d", "20"))

	require.NoError(t, runCLI(t, dir, "migrate", "--to", "badger", "--dry-run"))
	nonEmpty, err := storage.IsDirNonEmpty(filepath.Join(dir, "kv"))
	require.NoError(t, err)
	assert.False(t, nonEmpty, "dry run must not create the destination")

	require.NoError(t, runCLI(t, dir, "migrate", "--to", "badger"))

	kv, err := storage.OpenKV(filepath.Join(dir, "kv"), nil)
	require.NoError(t, err)
	counts, err := kv.Counts()
	require.NoError(t, err)
	assert.Equal(t, storage.Counts{Users: 1, Exercises: 1, Sleeps: 5}, counts)
	require.NoError(t, kv.Close())

	err = runCLI(t, dir, "migrate", "--to", "badger")
	assert.ErrorContains(t, err, "not empty")
}

func TestMigrateCmdRejectsSameTarget(t *testing.T) {
	dir := setupTestCLI(t)

	err := runCLI(t, dir, "migrate", "--to", "sqlite")
	assert.ErrorContains(t, err, "same")

	err = runCLI(t, dir, "migrate")
	assert.Error(t, err, "--to is required")
}
