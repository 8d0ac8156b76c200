package schedule

import (
	"time"

	"task-hero/internal/model"
)

// SuggestStart returns when the next task should start: the latest end time
// among pending tasks that end strictly after now, or now when there is none.
// The result is never before now.
func SuggestStart(pending []model.Task, now time.Time) time.Time {
	latest := now
	for _, t := range pending {
		if t.IsCompleted() {
			continue
		}
		if t.ScheduledEnd.After(now) && t.ScheduledEnd.After(latest) {
			latest = t.ScheduledEnd
		}
	}
	return latest
}

// Timing classifies a pending task against the current time.
type Timing string

const (
	TimingUpcoming   Timing = "upcoming"
	TimingInProgress Timing = "in_progress"
	TimingOverdue    Timing = "overdue"
)

// Classify places t relative to now: overdue once its end has passed,
// in progress between start and end (inclusive), upcoming before start.
func Classify(t model.Task, now time.Time) Timing {
	switch {
	case now.After(t.ScheduledEnd):
		return TimingOverdue
	case !now.Before(t.ScheduledStart):
		return TimingInProgress
	default:
		return TimingUpcoming
	}
}
