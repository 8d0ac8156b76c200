package gcalendar

import (
	"context"

	pkgCalendar "task-hero/pkg/gcalendar"
	pkgLog "task-hero/pkg/log"
)

// EventClient is the subset of *pkgCalendar.Client the notifier needs.
type EventClient interface {
	CreateEvent(ctx context.Context, req pkgCalendar.CreateEventRequest) (*pkgCalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

type implNotifier struct {
	l          pkgLog.Logger
	client     EventClient
	calendarID string
	timezone   string
}

// New creates a Notifier that books each reminder as a calendar event with a
// popup at its start time. The event id is the reminder handle.
func New(l pkgLog.Logger, client EventClient, calendarID, timezone string) *implNotifier {
	return &implNotifier{
		l:          l,
		client:     client,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
