// ABOUTME: View state for sleep history and the add-sleep form.
// ABOUTME: Same flow as ExerciseList with duration entered as hours and minutes.
package viewstate

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/models"
	"github.com/harperreed/arista/internal/service"
)

// SleepList holds the sleep history and the add form.
type SleepList struct {
	Sessions *Observable[[]models.SleepData]
	Err      *Observable[*apperr.Error]

	// Form fields.
	StartDate time.Time
	Duration  int
	Quality   int

	svc service.Service
	now func() time.Time
}

// NewSleepList builds the list state and loads the sleep sessions.
func NewSleepList(svc service.Service, now func() time.Time) *SleepList {
	if now == nil {
		now = time.Now
	}
	l := &SleepList{
		Sessions: NewObservable([]models.SleepData{}),
		Err:      NewObservable[*apperr.Error](nil),
		svc:      svc,
		now:      now,
	}
	l.ClearForm()
	l.Load()
	return l
}

// SetDuration fills the duration field from the hour and minute pickers.
func (l *SleepList) SetDuration(hours, minutes int) {
	l.Duration = hours*60 + minutes
}

// Load refreshes the sleep history from the facade.
func (l *SleepList) Load() {
	list, err := l.svc.GetSleepSessions()
	if err != nil {
		lastError(l.Err, err)
		return
	}
	l.Sessions.Set(list)
}

// Add submits the form. It reports whether the session was stored.
func (l *SleepList) Add() bool {
	data := models.SleepData{
		ID:        uuid.NewString(),
		StartDate: l.StartDate,
		Duration:  l.Duration,
		Quality:   l.Quality,
	}
	if err := data.Validate(); err != nil {
		lastError(l.Err, err)
		return false
	}
	if err := l.svc.AddSleep(data); err != nil {
		lastError(l.Err, err)
		return false
	}

	l.Err.Set(nil)
	l.ClearForm()
	l.Load()
	return true
}

// Delete removes s and reloads the history on success.
func (l *SleepList) Delete(s models.SleepData) {
	if err := l.svc.DeleteSleep(s.ID); err != nil {
		lastError(l.Err, err)
		return
	}
	l.Load()
}

// ClearForm resets the form to its initial values.
func (l *SleepList) ClearForm() {
	l.StartDate = l.now()
	l.Duration = 0
	l.Quality = 0
}
