package gamification

import (
	"time"

	"task-hero/internal/model"
)

// Stats summarises completion history for the dashboard.
type Stats struct {
	TotalXPEarned     int
	CompletedThisWeek int
	CompletedTotal    int
}

// Summarize aggregates history relative to now. Weekly counts use the
// engine's calendar; entries without a completion time are not counted for the week.
func (e Engine) Summarize(history []model.Task, now time.Time) Stats {
	var s Stats
	for _, t := range history {
		s.TotalXPEarned += t.XPAwarded
		s.CompletedTotal++
		if t.CompletedAt != nil && e.calendar.IsWithinWeek(*t.CompletedAt, now) {
			s.CompletedThisWeek++
		}
	}
	return s
}
