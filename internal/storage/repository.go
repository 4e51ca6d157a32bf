// ABOUTME: Repository interfaces for the arista record store.
// ABOUTME: Defines per-record-type contracts, the Store aggregate, and sentinel errors.
package storage

import "errors"

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("not found")
	// ErrUserMissing is returned when an exercise or sleep references no existing user.
	ErrUserMissing = errors.New("referenced user does not exist")
	// ErrConflict is returned when a record id is already taken.
	ErrConflict = errors.New("record already exists")
)

// UserRepository stores the user record.
type UserRepository interface {
	CreateUser(u *UserRecord) error
	// FirstUser returns the first user ordered by id, or ErrNotFound.
	FirstUser() (*UserRecord, error)
}

// ExerciseRepository stores exercise sessions.
type ExerciseRepository interface {
	CreateExercise(e *ExerciseRecord) error
	// ListExercises returns all exercises, most recent StartDate first.
	ListExercises() ([]*ExerciseRecord, error)
	GetExercise(id string) (*ExerciseRecord, error)
	DeleteExercise(id string) error
}

// SleepRepository stores sleep sessions.
type SleepRepository interface {
	CreateSleep(s *SleepRecord) error
	// ListSleeps returns all sleep sessions, most recent StartDate first.
	ListSleeps() ([]*SleepRecord, error)
	GetSleep(id string) (*SleepRecord, error)
	DeleteSleep(id string) error
}

// Store is a complete record store backend.
// This interface allows swapping implementations (e.g., for testing).
type Store interface {
	UserRepository
	ExerciseRepository
	SleepRepository

	Counts() (Counts, error)

	// Lifecycle
	Close() error
}

// Users is a UserRepository bound to an explicit store handle.
type Users struct {
	store UserRepository
}

// NewUserRepository returns the user repository for store.
func NewUserRepository(store UserRepository) *Users {
	return &Users{store: store}
}

// CreateUser inserts u.
func (r *Users) CreateUser(u *UserRecord) error { return r.store.CreateUser(u) }

// FirstUser fetches the first user with a limit of one.
func (r *Users) FirstUser() (*UserRecord, error) { return r.store.FirstUser() }

// Exercises is an ExerciseRepository bound to an explicit store handle.
type Exercises struct {
	store ExerciseRepository
}

// NewExerciseRepository returns the exercise repository for store.
func NewExerciseRepository(store ExerciseRepository) *Exercises {
	return &Exercises{store: store}
}

// CreateExercise inserts e.
func (r *Exercises) CreateExercise(e *ExerciseRecord) error { return r.store.CreateExercise(e) }

// ListExercises returns all exercises, most recent first.
func (r *Exercises) ListExercises() ([]*ExerciseRecord, error) { return r.store.ListExercises() }

// GetExercise fetches the exercise with exactly this id.
func (r *Exercises) GetExercise(id string) (*ExerciseRecord, error) { return r.store.GetExercise(id) }

// DeleteExercise removes the exercise with exactly this id.
func (r *Exercises) DeleteExercise(id string) error { return r.store.DeleteExercise(id) }

// Sleeps is a SleepRepository bound to an explicit store handle.
type Sleeps struct {
	store SleepRepository
}

// NewSleepRepository returns the sleep repository for store.
func NewSleepRepository(store SleepRepository) *Sleeps {
	return &Sleeps{store: store}
}

// CreateSleep inserts s.
func (r *Sleeps) CreateSleep(s *SleepRecord) error { return r.store.CreateSleep(s) }

// ListSleeps returns all sleep sessions, most recent first.
func (r *Sleeps) ListSleeps() ([]*SleepRecord, error) { return r.store.ListSleeps() }

// GetSleep fetches the sleep session with exactly this id.
func (r *Sleeps) GetSleep(id string) (*SleepRecord, error) { return r.store.GetSleep(id) }

// DeleteSleep removes the sleep session with exactly this id.
func (r *Sleeps) DeleteSleep(id string) error { return r.store.DeleteSleep(id) }
