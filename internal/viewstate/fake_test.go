// ABOUTME: In-memory Service double for view-state tests.
// ABOUTME: Records calls and returns configurable errors.
package viewstate

import (
	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/models"
	"github.com/harperreed/arista/internal/service"
)

type fakeService struct {
	user      *models.UserData
	exercises []models.ExerciseData
	sleeps    []models.SleepData

	getErr    error
	addErr    error
	deleteErr error

	addCalls  int
	loadCalls int
}

var _ service.Service = (*fakeService)(nil)

func (f *fakeService) CreateUser(first, last, id string) error {
	f.user = &models.UserData{ID: id, FirstName: first, LastName: last}
	return nil
}

func (f *fakeService) GetUser() (*models.UserData, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}

func (f *fakeService) AddExercise(d models.ExerciseData) error {
	f.addCalls++
	if f.addErr != nil {
		return f.addErr
	}
	f.exercises = append([]models.ExerciseData{d}, f.exercises...)
	return nil
}

func (f *fakeService) GetExercises() ([]models.ExerciseData, error) {
	f.loadCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]models.ExerciseData{}, f.exercises...), nil
}

func (f *fakeService) DeleteExercise(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, e := range f.exercises {
		if e.ID == id {
			f.exercises = append(f.exercises[:i], f.exercises[i+1:]...)
			return nil
		}
	}
	return apperr.ErrExerciseNotFound
}

func (f *fakeService) AddSleep(d models.SleepData) error {
	f.addCalls++
	if f.addErr != nil {
		return f.addErr
	}
	f.sleeps = append([]models.SleepData{d}, f.sleeps...)
	return nil
}

func (f *fakeService) GetSleepSessions() ([]models.SleepData, error) {
	f.loadCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]models.SleepData{}, f.sleeps...), nil
}

func (f *fakeService) DeleteSleep(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, s := range f.sleeps {
		if s.ID == id {
			f.sleeps = append(f.sleeps[:i], f.sleeps[i+1:]...)
			return nil
		}
	}
	return apperr.ErrSleepNotFound
}

func (f *fakeService) Summary() (*service.Summary, error) {
	return &service.Summary{User: f.user, ExerciseCount: len(f.exercises), SleepCount: len(f.sleeps)}, nil
}
