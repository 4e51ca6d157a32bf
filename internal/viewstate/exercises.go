// ABOUTME: View state for the exercise list and add-exercise form.
// ABOUTME: Validates form input before calling the facade, then reloads the list.
package viewstate

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/models"
	"github.com/harperreed/arista/internal/service"
)

// ExerciseList holds the exercise history and the add form.
type ExerciseList struct {
	Exercises *Observable[[]models.ExerciseData]
	Err       *Observable[*apperr.Error]

	// Form fields.
	Category  models.Category
	StartDate time.Time
	Duration  int
	Intensity int

	svc service.Service
	now func() time.Time
}

// NewExerciseList builds the list state and loads the exercises.
// A nil now defaults to time.Now.
func NewExerciseList(svc service.Service, now func() time.Time) *ExerciseList {
	if now == nil {
		now = time.Now
	}
	l := &ExerciseList{
		Exercises: NewObservable([]models.ExerciseData{}),
		Err:       NewObservable[*apperr.Error](nil),
		svc:       svc,
		now:       now,
	}
	l.ClearForm()
	l.Load()
	return l
}

// Load refreshes the exercise list from the facade.
func (l *ExerciseList) Load() {
	list, err := l.svc.GetExercises()
	if err != nil {
		lastError(l.Err, err)
		return
	}
	l.Exercises.Set(list)
}

// Add submits the form. It reports whether the exercise was stored.
func (l *ExerciseList) Add() bool {
	category := l.Category
	if c, ok := models.ParseCategory(string(category)); ok {
		category = c
	}
	data := models.ExerciseData{
		ID:        uuid.NewString(),
		Category:  category,
		StartDate: l.StartDate,
		Duration:  l.Duration,
		Intensity: l.Intensity,
	}
	if err := data.Validate(); err != nil {
		lastError(l.Err, err)
		return false
	}
	if err := l.svc.AddExercise(data); err != nil {
		lastError(l.Err, err)
		return false
	}

	l.Err.Set(nil)
	l.ClearForm()
	l.Load()
	return true
}

// Delete removes e and reloads the list on success.
func (l *ExerciseList) Delete(e models.ExerciseData) {
	if err := l.svc.DeleteExercise(e.ID); err != nil {
		lastError(l.Err, err)
		return
	}
	l.Load()
}

// ClearForm resets the form to its initial values.
func (l *ExerciseList) ClearForm() {
	l.Category = ""
	l.StartDate = l.now()
	l.Duration = 0
	l.Intensity = 0
}
