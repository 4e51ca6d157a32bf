// ABOUTME: SleepData DTO for recorded sleep sessions.
// ABOUTME: Includes duration formatting shared by CLI and MCP output.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/arista/internal/apperr"
)

// Limits offered by the sleep form: up to 24 hours and 59 minutes.
const (
	MaxSleepDuration = 24*60 + 59
	MaxQuality       = 10
)

// SleepData describes one sleep session.
type SleepData struct {
	ID        string    `json:"id" yaml:"id"`
	StartDate time.Time `json:"start_date" yaml:"start_date"`
	Duration  int       `json:"duration" yaml:"duration"`
	Quality   int       `json:"quality" yaml:"quality"`
}

// NewSleep creates a SleepData with a generated UUID starting now.
func NewSleep() SleepData {
	return SleepData{
		ID:        uuid.NewString(),
		StartDate: time.Now(),
	}
}

// WithStartDate returns a copy with a custom start time.
func (s SleepData) WithStartDate(t time.Time) SleepData {
	s.StartDate = t
	return s
}

// WithDuration returns a copy with the duration in minutes.
func (s SleepData) WithDuration(minutes int) SleepData {
	s.Duration = minutes
	return s
}

// WithQuality returns a copy with the given quality score.
func (s SleepData) WithQuality(quality int) SleepData {
	s.Quality = quality
	return s
}

// Equal compares field by field; start dates compare as instants.
func (s SleepData) Equal(other SleepData) bool {
	return s.ID == other.ID &&
		s.StartDate.Equal(other.StartDate) &&
		s.Duration == other.Duration &&
		s.Quality == other.Quality
}

// Validate reports the first field outside its accepted range.
func (s SleepData) Validate() error {
	if s.StartDate.IsZero() {
		return apperr.InvalidInput("start date")
	}
	if s.Duration < 0 || s.Duration > MaxSleepDuration {
		return apperr.InvalidInput("duration")
	}
	if s.Quality < 0 || s.Quality > MaxQuality {
		return apperr.InvalidInput("quality")
	}
	return nil
}

// FormatDuration renders minutes as "7h 35m", "8h", or "45m".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
