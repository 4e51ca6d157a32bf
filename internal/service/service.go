// ABOUTME: Service facade over the user, exercise, and sleep repositories.
// ABOUTME: Maps DTOs to records and normalizes every failure into an apperr.Error.
package service

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/logging"
	"github.com/harperreed/arista/internal/models"
	"github.com/harperreed/arista/internal/observability"
	"github.com/harperreed/arista/internal/storage"
)

// Service is the capability surface consumed by view state, the CLI, and MCP.
type Service interface {
	CreateUser(firstName, lastName, id string) error
	// GetUser returns nil without error when no user exists.
	GetUser() (*models.UserData, error)

	AddExercise(data models.ExerciseData) error
	GetExercises() ([]models.ExerciseData, error)
	DeleteExercise(id string) error

	AddSleep(data models.SleepData) error
	GetSleepSessions() ([]models.SleepData, error)
	DeleteSleep(id string) error

	Summary() (*Summary, error)
}

// Option configures a ModelService.
type Option func(*ModelService)

// WithLogger sets the logger used for operation tracing.
func WithLogger(l *log.Logger) Option {
	return func(s *ModelService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records operation outcomes into m.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *ModelService) { s.metrics = m }
}

// WithClock replaces time.Now for record timestamps and seeding.
func WithClock(now func() time.Time) Option {
	return func(s *ModelService) {
		if now != nil {
			s.now = now
		}
	}
}

// ModelService implements Service on top of the storage repositories.
type ModelService struct {
	users     storage.UserRepository
	exercises storage.ExerciseRepository
	sleeps    storage.SleepRepository

	logger  *log.Logger
	metrics *observability.Metrics
	now     func() time.Time

	// mu serializes mutations so a user check and the dependent write act as one step.
	mu sync.RWMutex
}

// Compile-time check that ModelService implements Service.
var _ Service = (*ModelService)(nil)

// New builds a facade from explicit repository handles.
func New(users storage.UserRepository, exercises storage.ExerciseRepository, sleeps storage.SleepRepository, opts ...Option) *ModelService {
	s := &ModelService{
		users:     users,
		exercises: exercises,
		sleeps:    sleeps,
		logger:    logging.Discard(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromStore builds a facade whose repositories share one store.
func NewFromStore(store storage.Store, opts ...Option) *ModelService {
	return New(
		storage.NewUserRepository(store),
		storage.NewExerciseRepository(store),
		storage.NewSleepRepository(store),
		opts...,
	)
}

// observe logs and records the outcome of op. Call it deferred with a
// pointer to the named error result.
func (s *ModelService) observe(op string, started time.Time, err *error, keyvals ...interface{}) {
	s.metrics.Observe(op, *err, time.Since(started))
	keyvals = append([]interface{}{"op", op}, keyvals...)
	if *err != nil {
		keyvals = append(keyvals, "kind", apperr.KindOf(*err), "err", *err)
		s.logger.Debug("operation failed", keyvals...)
		return
	}
	s.logger.Debug("operation succeeded", keyvals...)
}
