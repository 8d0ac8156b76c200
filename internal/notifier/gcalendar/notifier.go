package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"task-hero/internal/notifier"
	pkgCalendar "task-hero/pkg/gcalendar"
)

const eventLength = time.Minute

// Schedule creates the reminder event.
func (n *implNotifier) Schedule(ctx context.Context, title, body string, triggerAt time.Time) (string, error) {
	popup := int64(0)
	event, err := n.client.CreateEvent(ctx, pkgCalendar.CreateEventRequest{
		CalendarID:   n.calendarID,
		Summary:      fmt.Sprintf("%s %s", title, body),
		Description:  body,
		StartTime:    triggerAt,
		EndTime:      triggerAt.Add(eventLength),
		Timezone:     n.timezone,
		PopupMinutes: &popup,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", notifier.ErrScheduling, err)
	}
	if event.ID == "" {
		return "", fmt.Errorf("%w: calendar returned no event id", notifier.ErrScheduling)
	}

	n.l.Debugf(ctx, "gcalendar notifier: reminder event %s at %s", event.ID, triggerAt.Format(time.RFC3339))
	return event.ID, nil
}

// Cancel deletes the reminder event.
func (n *implNotifier) Cancel(ctx context.Context, handle string) error {
	err := n.client.DeleteEvent(ctx, n.calendarID, handle)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pkgCalendar.ErrEventNotFound):
		return fmt.Errorf("%w: %s", notifier.ErrNotFound, handle)
	default:
		return fmt.Errorf("failed to cancel reminder %s: %w", handle, err)
	}
}
