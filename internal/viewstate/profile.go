// ABOUTME: View state for the user profile screen.
// ABOUTME: Exposes the user's names and the last load error.
package viewstate

import (
	"github.com/harperreed/arista/internal/apperr"
	"github.com/harperreed/arista/internal/service"
)

// UserProfile mirrors the stored user for display.
type UserProfile struct {
	FirstName *Observable[string]
	LastName  *Observable[string]
	Err       *Observable[*apperr.Error]

	svc service.Service
}

// NewUserProfile builds the profile state and loads the user.
func NewUserProfile(svc service.Service) *UserProfile {
	p := &UserProfile{
		FirstName: NewObservable(""),
		LastName:  NewObservable(""),
		Err:       NewObservable[*apperr.Error](nil),
		svc:       svc,
	}
	p.Load()
	return p
}

// Load fetches the user. A missing user clears the names and records NoUserFound.
func (p *UserProfile) Load() {
	user, err := p.svc.GetUser()
	if err != nil {
		lastError(p.Err, err)
		return
	}
	if user == nil {
		p.FirstName.Set("")
		p.LastName.Set("")
		p.Err.Set(apperr.ErrNoUserFound)
		return
	}
	p.FirstName.Set(user.FirstName)
	p.LastName.Set(user.LastName)
	p.Err.Set(nil)
}
