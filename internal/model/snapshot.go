package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Snapshot is the serialized engine state handed to and returned by the
// persistence layer. It is always a copy; nothing in it is shared with the engine.
type Snapshot struct {
	Tasks           []Task
	CompletedTasks  []Task
	Progression     Progression
	ThemePreference Theme
}

// snapshotRecord is the stored layout. Keys match the mobile app's
// @TaskHeroData blob so exported data restores unchanged.
type snapshotRecord struct {
	Tasks           []taskRecord `json:"tasks"`
	CompletedTasks  []taskRecord `json:"completedTasks"`
	UserLevel       int          `json:"userLevel"`
	UserXP          int          `json:"userXP"`
	CurrentStreak   int          `json:"currentStreak"`
	LongestStreak   int          `json:"longestStreak"`
	ThemePreference string       `json:"themePreference"`
}

type taskRecord struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Difficulty     string  `json:"difficulty"`
	Completed      bool    `json:"completed"`
	XPAwarded      int     `json:"xpAwarded"`
	EstimatedTime  int     `json:"estimatedTime"`
	ScheduledTime  string  `json:"scheduledTime"`
	EndTime        string  `json:"endTime"`
	NotificationID *string `json:"notificationId"`
	CompletedAt    *string `json:"completedAt,omitempty"`
}

// EncodeSnapshot serializes s to its stored JSON form.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	rec := snapshotRecord{
		Tasks:           make([]taskRecord, 0, len(s.Tasks)),
		CompletedTasks:  make([]taskRecord, 0, len(s.CompletedTasks)),
		UserLevel:       s.Progression.Level,
		UserXP:          s.Progression.XP,
		CurrentStreak:   s.Progression.CurrentStreak,
		LongestStreak:   s.Progression.LongestStreak,
		ThemePreference: string(s.ThemePreference),
	}
	for _, t := range s.Tasks {
		rec.Tasks = append(rec.Tasks, toRecord(t))
	}
	for _, t := range s.CompletedTasks {
		rec.CompletedTasks = append(rec.CompletedTasks, toRecord(t))
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses stored JSON. Only a payload that is not a JSON object
// is an error; any individual field that is missing or has the wrong shape is
// left at its zero value.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	var s Snapshot
	s.Tasks = decodeTasks(fields["tasks"])
	s.CompletedTasks = decodeTasks(fields["completedTasks"])
	s.Progression.Level = decodeInt(fields["userLevel"])
	s.Progression.XP = decodeInt(fields["userXP"])
	s.Progression.CurrentStreak = decodeInt(fields["currentStreak"])
	s.Progression.LongestStreak = decodeInt(fields["longestStreak"])
	s.ThemePreference = Theme(decodeString(fields["themePreference"]))
	return s, nil
}

func toRecord(t Task) taskRecord {
	rec := taskRecord{
		ID:            t.ID,
		Title:         t.Title,
		Difficulty:    string(t.Difficulty),
		Completed:     t.IsCompleted(),
		XPAwarded:     t.XPAwarded,
		EstimatedTime: t.EstimatedMinutes,
		ScheduledTime: formatTime(t.ScheduledStart),
		EndTime:       formatTime(t.ScheduledEnd),
	}
	if t.NotificationRef != "" {
		ref := t.NotificationRef
		rec.NotificationID = &ref
	}
	if t.CompletedAt != nil {
		at := formatTime(*t.CompletedAt)
		rec.CompletedAt = &at
	}
	return rec
}

func decodeTasks(raw json.RawMessage) []Task {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}

	tasks := make([]Task, 0, len(items))
	for _, item := range items {
		var fields map[string]json.RawMessage
		if json.Unmarshal(item, &fields) != nil {
			continue
		}

		t := Task{
			ID:               decodeString(fields["id"]),
			Title:            decodeString(fields["title"]),
			Difficulty:       Difficulty(decodeString(fields["difficulty"])),
			XPAwarded:        decodeInt(fields["xpAwarded"]),
			EstimatedMinutes: decodeInt(fields["estimatedTime"]),
			ScheduledStart:   decodeTime(fields["scheduledTime"]),
			ScheduledEnd:     decodeTime(fields["endTime"]),
			NotificationRef:  decodeString(fields["notificationId"]),
			Status:           StatusPending,
		}
		if decodeBool(fields["completed"]) {
			t.Status = StatusCompleted
		}
		if at := decodeTime(fields["completedAt"]); !at.IsZero() {
			t.CompletedAt = &at
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func decodeString(raw json.RawMessage) string {
	var v string
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return ""
	}
	return v
}

// decodeInt accepts JSON numbers and numeric strings, truncating fractions.
func decodeInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if json.Unmarshal(raw, &f) == nil {
		return int(f)
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		var n float64
		if _, err := fmt.Sscanf(s, "%g", &n); err == nil {
			return int(n)
		}
	}
	return 0
}

func decodeBool(raw json.RawMessage) bool {
	var v bool
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return false
	}
	return v
}

func decodeTime(raw json.RawMessage) time.Time {
	s := decodeString(raw)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
