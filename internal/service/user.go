// ABOUTME: User operations of the service facade.
// ABOUTME: Enforces a single user and reports absence as a nil result.
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/models"
	"github.com/harperreed/arista/internal/storage"
)

// CreateUser inserts the user. An empty id is replaced with a fresh UUID.
// Only one user may exist; a second call fails with UserExists.
func (s *ModelService) CreateUser(firstName, lastName, id string) (err error) {
	if id == "" {
		id = uuid.NewString()
	}
	defer s.observe("create_user", time.Now(), &err, "id", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.firstUser()
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.ErrUserExists
	}

	rec := &storage.UserRecord{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: s.now(),
	}
	if err := s.users.CreateUser(rec); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// GetUser returns the stored user, or nil when none exists.
func (s *ModelService) GetUser() (user *models.UserData, err error) {
	defer s.observe("get_user", time.Now(), &err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.firstUser()
}

// firstUser expects the caller to hold mu.
func (s *ModelService) firstUser() (*models.UserData, error) {
	rec, err := s.users.FirstUser()
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return userFromRecord(rec), nil
}
