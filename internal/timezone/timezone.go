package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Mexico_City"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Clock yields "now" in the clinic's timezone. Tests swap Now for a fixed instant.
type Clock struct {
	Loc *time.Location
	Now func() time.Time
}

func NewClock(tz string) Clock {
	return Clock{
		Loc: Location(tz),
		Now: time.Now,
	}
}

func (c Clock) Current() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Loc
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}
