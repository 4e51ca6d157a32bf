// ABOUTME: Tests for the view-state objects and Observable.
// ABOUTME: Drives form submission, deletion, and error capture through a fake service.
package viewstate

import (
	"errors"
	"testing"
	"time"

	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestObservableSubscribe(t *testing.T) {
	o := NewObservable(1)
	var seen []int
	unsubscribe := o.Subscribe(func(v int) { seen = append(seen, v) })

	o.Set(2)
	o.Set(3)
	unsubscribe()
	o.Set(4)

	assert.Equal(t, []int{2, 3}, seen)
	assert.Equal(t, 4, o.Get())
}

func TestObservableNotifiesInSubscriptionOrder(t *testing.T) {
	o := NewObservable("")
	var order []int
	var unsubs []func()
	for i := 0; i < 10; i++ {
		i := i
		unsubs = append(unsubs, o.Subscribe(func(string) { order = append(order, i) }))
	}
	unsubs[3]()

	o.Set("x")

	assert.Equal(t, []int{0, 1, 2, 4, 5, 6, 7, 8, 9}, order)
}

func TestUserProfileLoad(t *testing.T) {
	svc := &fakeService{user: &models.UserData{ID: "u", FirstName: "John", LastName: "Doe"}}
	p := NewUserProfile(svc)

	assert.Equal(t, "John", p.FirstName.Get())
	assert.Equal(t, "Doe", p.LastName.Get())
	assert.Nil(t, p.Err.Get())
}

func TestUserProfileNoUser(t *testing.T) {
	p := NewUserProfile(&fakeService{})

	assert.Empty(t, p.FirstName.Get())
	assert.True(t, apperr.Equal(p.Err.Get(), apperr.ErrNoUserFound))
}

func TestUserProfileUnknownError(t *testing.T) {
	p := NewUserProfile(&fakeService{getErr: errors.New("offline")})
	assert.True(t, apperr.Equal(p.Err.Get(), apperr.Unknown("offline")))
}

func TestExerciseListAdd(t *testing.T) {
	svc := &fakeService{}
	l := NewExerciseList(svc, clock)

	var updates int
	l.Exercises.Subscribe(func([]models.ExerciseData) { updates++ })

	l.Category = models.CategoryRunning
	l.Duration = 45
	l.Intensity = 7
	require.True(t, l.Add())

	list := l.Exercises.Get()
	require.Len(t, list, 1)
	assert.Equal(t, models.CategoryRunning, list[0].Category)
	assert.Equal(t, 45, list[0].Duration)
	assert.NotEmpty(t, list[0].ID)
	assert.Equal(t, 1, updates)

	// Form is cleared after a successful add.
	assert.Empty(t, l.Category)
	assert.Zero(t, l.Duration)
	assert.Zero(t, l.Intensity)
	assert.Equal(t, fixedNow, l.StartDate)
}

func TestExerciseListAddNormalizesCategory(t *testing.T) {
	svc := &fakeService{}
	l := NewExerciseList(svc, clock)

	l.Category = "swimming"
	l.Duration = 30
	require.True(t, l.Add())

	list := l.Exercises.Get()
	require.Len(t, list, 1)
	assert.Equal(t, models.CategorySwimming, list[0].Category)
}

func TestExerciseListAddInvalid(t *testing.T) {
	tests := []struct {
		name      string
		fill      func(l *ExerciseList)
		wantField string
	}{
		{"empty category", func(l *ExerciseList) {}, "category"},
		{"duration too long", func(l *ExerciseList) {
			l.Category = models.CategorySwimming
			l.Duration = 121
		}, "duration"},
		{"intensity too high", func(l *ExerciseList) {
			l.Category = models.CategorySwimming
			l.Intensity = 11
		}, "intensity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			l := NewExerciseList(svc, clock)
			tt.fill(l)

			assert.False(t, l.Add())
			assert.True(t, apperr.Equal(l.Err.Get(), apperr.InvalidInput(tt.wantField)), "got %v", l.Err.Get())
			assert.Zero(t, svc.addCalls, "facade must not be called")
		})
	}
}

func TestExerciseListAddServiceError(t *testing.T) {
	svc := &fakeService{addErr: apperr.ErrNoUserFound}
	l := NewExerciseList(svc, clock)
	l.Category = models.CategoryWalking

	assert.False(t, l.Add())
	assert.True(t, apperr.Equal(l.Err.Get(), apperr.ErrNoUserFound))
	assert.Equal(t, models.CategoryWalking, l.Category, "form is kept on failure")
}

func TestExerciseListDelete(t *testing.T) {
	e := models.NewExercise(models.CategoryCycling)
	svc := &fakeService{exercises: []models.ExerciseData{e}}
	l := NewExerciseList(svc, clock)
	require.Len(t, l.Exercises.Get(), 1)

	l.Delete(e)
	assert.Empty(t, l.Exercises.Get())
	assert.Nil(t, l.Err.Get())

	l.Delete(e)
	assert.True(t, apperr.Equal(l.Err.Get(), apperr.ErrExerciseNotFound))
}

func TestExerciseListLoadError(t *testing.T) {
	svc := &fakeService{getErr: apperr.Storage(errors.New("locked"))}
	l := NewExerciseList(svc, clock)

	assert.Equal(t, apperr.KindStorage, l.Err.Get().Kind)
	assert.Empty(t, l.Exercises.Get())
	assert.Equal(t, 1, svc.loadCalls, "constructor loads once")
}

func TestSleepListAdd(t *testing.T) {
	svc := &fakeService{}
	l := NewSleepList(svc, clock)

	l.SetDuration(7, 35)
	l.Quality = 8
	l.StartDate = fixedNow.Add(-10 * time.Hour)
	require.True(t, l.Add())

	list := l.Sessions.Get()
	require.Len(t, list, 1)
	assert.Equal(t, 455, list[0].Duration)
	assert.Equal(t, 8, list[0].Quality)
	assert.Zero(t, l.Duration)
}

func TestSleepListAddInvalidQuality(t *testing.T) {
	svc := &fakeService{}
	l := NewSleepList(svc, clock)
	l.Quality = 12

	assert.False(t, l.Add())
	assert.True(t, apperr.Equal(l.Err.Get(), apperr.InvalidInput("quality")))
}

func TestSleepListDeleteMissing(t *testing.T) {
	l := NewSleepList(&fakeService{}, clock)
	l.Delete(models.NewSleep())
	assert.True(t, apperr.Equal(l.Err.Get(), apperr.ErrSleepNotFound))
}
