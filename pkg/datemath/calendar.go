package datemath

import (
	"fmt"
	"time"
)

// Calendar compares instants by calendar date in a fixed location.
// Time-of-day is ignored by every comparison.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a Calendar for the given IANA timezone string.
// "Local" and "" both mean the process local zone.
func NewCalendar(timezone string) (Calendar, error) {
	if timezone == "" {
		return Local(), nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Calendar{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return Calendar{location: loc}, nil
}

// Local returns a Calendar in the process local zone.
func Local() Calendar {
	return Calendar{location: time.Local}
}

// Location returns the zone the calendar works in.
func (c Calendar) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// StartOfDay returns midnight at the start of t's calendar date.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	loc := c.Location()
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek returns midnight of the most recent Sunday at or before t.
func (c Calendar) StartOfWeek(t time.Time) time.Time {
	day := c.StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// IsSameDay reports whether a and b fall on the same calendar date.
func (c Calendar) IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.In(c.Location()).Date()
	by, bm, bd := b.In(c.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// IsConsecutiveDay reports whether later's date is exactly one day after earlier's.
func (c Calendar) IsConsecutiveDay(earlier, later time.Time) bool {
	next := c.StartOfDay(earlier).AddDate(0, 0, 1)
	return c.IsSameDay(next, later)
}

// IsWithinWeek reports whether t's date lies in [startOfWeek, startOfWeek+6d]
// of the week containing now.
func (c Calendar) IsWithinWeek(t, now time.Time) bool {
	start := c.StartOfWeek(now)
	end := start.AddDate(0, 0, 6)
	day := c.StartOfDay(t)
	return !day.Before(start) && !day.After(end)
}

// IsWithinCurrentWeek is IsWithinWeek against the wall clock.
func (c Calendar) IsWithinCurrentWeek(t time.Time) bool {
	return c.IsWithinWeek(t, time.Now())
}
