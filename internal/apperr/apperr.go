// ABOUTME: Typed application errors shared by the service facade and its callers.
// ABOUTME: Errors match by kind through errors.Is and compare structurally via Equal.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind string

const (
	KindInvalidInput     Kind = "invalid_input"
	KindStorage          Kind = "storage"
	KindNoUserFound      Kind = "no_user_found"
	KindUserExists       Kind = "user_exists"
	KindExerciseNotFound Kind = "exercise_not_found"
	KindSleepNotFound    Kind = "sleep_not_found"
	KindUnknown          Kind = "unknown"
)

// Error is the single error type surfaced by the service layer.
type Error struct {
	Kind Kind
	// Field names the offending input for KindInvalidInput.
	Field string
	// Detail carries free text for KindUnknown.
	Detail string
	// Err is the underlying cause for KindStorage.
	Err error
}

var (
	ErrNoUserFound      = &Error{Kind: KindNoUserFound}
	ErrUserExists       = &Error{Kind: KindUserExists}
	ErrExerciseNotFound = &Error{Kind: KindExerciseNotFound}
	ErrSleepNotFound    = &Error{Kind: KindSleepNotFound}
)

// InvalidInput reports a field that failed validation.
func InvalidInput(field string) *Error {
	return &Error{Kind: KindInvalidInput, Field: field}
}

// Storage wraps a failure of the record store.
func Storage(cause error) *Error {
	return &Error{Kind: KindStorage, Err: cause}
}

// Unknown reports an unclassified failure.
func Unknown(message string) *Error {
	return &Error{Kind: KindUnknown, Detail: message}
}

func (e *Error) Error() string {
	return e.Message()
}

// Message returns the user-facing description.
func (e *Error) Message() string {
	switch e.Kind {
	case KindInvalidInput:
		return fmt.Sprintf("Invalid input for %s.", e.Field)
	case KindStorage:
		if e.Err == nil {
			return "Storage error"
		}
		return fmt.Sprintf("Storage error: %v", e.Err)
	case KindNoUserFound:
		return "No user found"
	case KindUserExists:
		return "A user already exists"
	case KindExerciseNotFound:
		return "Exercise not found"
	case KindSleepNotFound:
		return "Sleep session not found"
	default:
		return fmt.Sprintf("An unknown error occurred: %s", e.Detail)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Classify promotes err into an *Error. Nil stays nil.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Unknown(err.Error())
}

// Equal compares two errors structurally: same kind and the same payload
// for that kind. Storage causes compare by their description.
func Equal(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	var ea, eb *Error
	if !errors.As(a, &ea) || !errors.As(b, &eb) {
		return false
	}
	if ea == nil || eb == nil {
		return ea == eb
	}
	if ea.Kind != eb.Kind {
		return false
	}
	switch ea.Kind {
	case KindInvalidInput:
		return ea.Field == eb.Field
	case KindStorage:
		return causeText(ea.Err) == causeText(eb.Err)
	case KindUnknown:
		return ea.Detail == eb.Detail
	default:
		return true
	}
}

func causeText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
