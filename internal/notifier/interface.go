package notifier

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrScheduling wraps any failure to schedule a reminder.
	ErrScheduling = errors.New("failed to schedule reminder")
	// ErrNotFound is returned when cancelling a reminder that already fired or was cancelled.
	ErrNotFound = errors.New("reminder not found")
)

// Notifier schedules and cancels one-shot reminders identified by an opaque handle.
type Notifier interface {
	Schedule(ctx context.Context, title, body string, triggerAt time.Time) (string, error)
	Cancel(ctx context.Context, handle string) error
}
