package services

import (
	"fmt"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKeyResolver derives the calendar-day identifier that scopes one claimable
// slot. The date is computed on the wall clock of the configured zone, so day
// boundaries land at local midnight regardless of the host timezone.
type DayKeyResolver struct {
	location *time.Location
}

// NewDayKeyResolver loads the zone once at construction. An unknown zone name
// is a configuration error and must stop bootstrap, not surface per request.
func NewDayKeyResolver(timezone string) (DayKeyResolver, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return DayKeyResolver{}, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return DayKeyResolver{location: location}, nil
}

// DayKey formats the instant as YYYY-MM-DD in the resolver's zone.
func (r DayKeyResolver) DayKey(at time.Time) string {
	return at.In(r.location).Format(dayKeyLayout)
}

// Timezone returns the configured zone name.
func (r DayKeyResolver) Timezone() string {
	return r.location.String()
}
