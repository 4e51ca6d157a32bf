// ABOUTME: Sleep operations of the service facade.
// ABOUTME: Mirrors the exercise operations with a distinct not-found kind.
package service

import (
	"time"

	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/models"
)

// AddSleep stores data for the current user.
func (s *ModelService) AddSleep(data models.SleepData) (err error) {
	defer s.observe("add_sleep", time.Now(), &err, "id", data.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.firstUser()
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.ErrNoUserFound
	}

	if err := s.sleeps.CreateSleep(sleepRecord(data, user.ID, s.now())); err != nil {
		return createError(err)
	}
	return nil
}

// GetSleepSessions returns every sleep session, most recent first.
func (s *ModelService) GetSleepSessions() (list []models.SleepData, err error) {
	defer s.observe("get_sleep_sessions", time.Now(), &err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.sleeps.ListSleeps()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	list = make([]models.SleepData, 0, len(records))
	for _, r := range records {
		list = append(list, sleepFromRecord(r))
	}
	return list, nil
}

// DeleteSleep removes the sleep session with exactly this id.
func (s *ModelService) DeleteSleep(id string) (err error) {
	defer s.observe("delete_sleep", time.Now(), &err, "id", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sleeps.DeleteSleep(id); err != nil {
		return deleteError(err, apperr.ErrSleepNotFound)
	}
	return nil
}
