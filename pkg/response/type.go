package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// DateTime is a timestamp that marshals as DateTimeFormat, or null when zero.
type DateTime time.Time

// NewDateTime returns nil for a nil or zero t.
func NewDateTime(t *time.Time) *DateTime {
	if t == nil || t.IsZero() {
		return nil
	}
	d := DateTime(*t)
	return &d
}

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(DateTimeFormat))
}
