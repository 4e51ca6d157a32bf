// ABOUTME: Exercise operations of the service facade.
// ABOUTME: Links new exercises to the current user and keeps caller-supplied ids.
package service

import (
	"time"

	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/models"
)

// AddExercise stores data for the current user.
// Fails with NoUserFound when no user exists.
func (s *ModelService) AddExercise(data models.ExerciseData) (err error) {
	defer s.observe("add_exercise", time.Now(), &err, "id", data.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.firstUser()
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.ErrNoUserFound
	}

	if err := s.exercises.CreateExercise(exerciseRecord(data, user.ID, s.now())); err != nil {
		return createError(err)
	}
	return nil
}

// GetExercises returns every exercise, most recent first.
func (s *ModelService) GetExercises() (list []models.ExerciseData, err error) {
	defer s.observe("get_exercises", time.Now(), &err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.exercises.ListExercises()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	list = make([]models.ExerciseData, 0, len(records))
	for _, r := range records {
		list = append(list, exerciseFromRecord(r))
	}
	return list, nil
}

// DeleteExercise removes the exercise with exactly this id.
func (s *ModelService) DeleteExercise(id string) (err error) {
	defer s.observe("delete_exercise", time.Now(), &err, "id", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.exercises.DeleteExercise(id); err != nil {
		return deleteError(err, apperr.ErrExerciseNotFound)
	}
	return nil
}
