// Package clock implements the clinic-local clock over an IANA timezone.
package clock

import (
	"time"

	"vetclinic/config"
	"vetclinic/internal/domain/service"
	"vetclinic/internal/errors"
)

// localClock returns wall-clock time in the configured clinic timezone.
type localClock struct {
	loc *time.Location
}

// New loads the configured timezone and returns a clinic clock.
func New(cfg *config.Config) (service.Clock, error) {
	loc, err := time.LoadLocation(cfg.Clinic.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load timezone %q", cfg.Clinic.Timezone)
	}

	return &localClock{loc: loc}, nil
}

func (c *localClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *localClock) Today() time.Time {
	now := c.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
}

func (c *localClock) Location() *time.Location {
	return c.loc
}
