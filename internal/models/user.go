// ABOUTME: UserData DTO for the single tracked person.
// ABOUTME: Immutable value copied freely between storage, service, and view layers.
package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/arista/internal/apperr"
)

// UserData carries a user's identity and display name.
type UserData struct {
	ID        string `json:"id" yaml:"id"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
}

// NewUser creates a UserData with a generated UUID.
func NewUser(firstName, lastName string) UserData {
	return UserData{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
	}
}

// FullName joins first and last name.
func (u UserData) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Initials returns the upper-cased first letter of each name part.
func (u UserData) Initials() string {
	var sb strings.Builder
	for _, part := range []string{u.FirstName, u.LastName} {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(string([]rune(part)[0])))
	}
	return sb.String()
}

// Equal reports whether two users carry the same data.
func (u UserData) Equal(other UserData) bool {
	return u == other
}

// ValidateUser checks the fields required to create a user.
func ValidateUser(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" {
		return apperr.InvalidInput("first name")
	}
	if strings.TrimSpace(lastName) == "" {
		return apperr.InvalidInput("last name")
	}
	return nil
}
