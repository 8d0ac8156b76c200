package gcalendar

import (
	"errors"
	"time"
)

// ErrEventNotFound is returned when an event is already gone.
var ErrEventNotFound = errors.New("calendar event not found")

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"

	// PopupMinutes, when non-nil, replaces the calendar's default reminders
	// with a single popup this many minutes before StartTime.
	PopupMinutes *int64
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
