// ABOUTME: First-run default data for a fresh store.
// ABOUTME: Creates the demo user and five nights of randomized sleep.
package service

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/arista/internal/models"
)

// Default seed values.
const (
	DefaultFirstName = "Charlotte"
	DefaultLastName  = "Razoul"
	defaultSleeps    = 5
	maxSeedDuration  = 900
)

// ApplyDefaultData seeds a demo user and recent sleep sessions when no
// user exists yet. It reports whether anything was written.
func (s *ModelService) ApplyDefaultData(rng *rand.Rand) (bool, error) {
	user, err := s.GetUser()
	if err != nil {
		return false, err
	}
	if user != nil {
		s.logger.Debug("default data skipped", "user", user.ID)
		return false, nil
	}

	if err := s.CreateUser(DefaultFirstName, DefaultLastName, uuid.NewString()); err != nil {
		return false, err
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(s.now().UnixNano()), 0))
	}

	now := s.now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	for i := 1; i <= defaultSleeps; i++ {
		sleep := models.NewSleep().
			WithStartDate(today.AddDate(0, 0, -i).Add(22 * time.Hour)).
			WithDuration(rng.IntN(maxSeedDuration + 1)).
			WithQuality(rng.IntN(models.MaxQuality + 1))
		if err := s.AddSleep(sleep); err != nil {
			return true, err
		}
	}

	s.logger.Info("default data applied", "sleeps", defaultSleeps)
	return true, nil
}
