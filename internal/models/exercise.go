// ABOUTME: ExerciseData DTO and the fixed exercise Category set.
// ABOUTME: Validation here runs at the presentation boundary, never in storage.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/arista/internal/apperr"
)

// Category is the kind of exercise performed.
type Category string

const (
	CategoryFootball Category = "Football"
	CategorySwimming Category = "Swimming"
	CategoryRunning  Category = "Running"
	CategoryWalking  Category = "Walking"
	CategoryCycling  Category = "Cycling"
	CategoryOther    Category = "Other"
)

// AllCategories lists the accepted categories in display order.
var AllCategories = []Category{
	CategoryFootball,
	CategorySwimming,
	CategoryRunning,
	CategoryWalking,
	CategoryCycling,
	CategoryOther,
}

// Limits offered by the input forms.
const (
	MaxExerciseDuration = 120
	MaxIntensity        = 10
)

// ParseCategory matches s against the category set, ignoring case.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range AllCategories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// IsValidCategory checks if a string names a known category.
func IsValidCategory(s string) bool {
	_, ok := ParseCategory(s)
	return ok
}

// ExerciseData describes one exercise session.
type ExerciseData struct {
	ID        string    `json:"id" yaml:"id"`
	Category  Category  `json:"category" yaml:"category"`
	StartDate time.Time `json:"start_date" yaml:"start_date"`
	Duration  int       `json:"duration" yaml:"duration"`
	Intensity int       `json:"intensity" yaml:"intensity"`
}

// NewExercise creates an ExerciseData with a generated UUID starting now.
func NewExercise(category Category) ExerciseData {
	return ExerciseData{
		ID:        uuid.NewString(),
		Category:  category,
		StartDate: time.Now(),
	}
}

// WithStartDate returns a copy with a custom start time.
func (e ExerciseData) WithStartDate(t time.Time) ExerciseData {
	e.StartDate = t
	return e
}

// WithDuration returns a copy with the duration in minutes.
func (e ExerciseData) WithDuration(minutes int) ExerciseData {
	e.Duration = minutes
	return e
}

// WithIntensity returns a copy with the given intensity.
func (e ExerciseData) WithIntensity(intensity int) ExerciseData {
	e.Intensity = intensity
	return e
}

// Equal compares field by field; start dates compare as instants.
func (e ExerciseData) Equal(other ExerciseData) bool {
	return e.ID == other.ID &&
		e.Category == other.Category &&
		e.StartDate.Equal(other.StartDate) &&
		e.Duration == other.Duration &&
		e.Intensity == other.Intensity
}

// Validate reports the first field outside its accepted range.
func (e ExerciseData) Validate() error {
	if !IsValidCategory(string(e.Category)) {
		return apperr.InvalidInput("category")
	}
	if e.StartDate.IsZero() {
		return apperr.InvalidInput("start date")
	}
	if e.Duration < 0 || e.Duration > MaxExerciseDuration {
		return apperr.InvalidInput("duration")
	}
	if e.Intensity < 0 || e.Intensity > MaxIntensity {
		return apperr.InvalidInput("intensity")
	}
	return nil
}
