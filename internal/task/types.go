package task

import (
	"time"

	"task-hero/internal/gamification"
	"task-hero/internal/model"
	"task-hero/internal/schedule"
)

// ReminderTitle is the title of every task reminder; the body is the task title.
const ReminderTitle = "🔔 Task Starting Soon!"

// CreateInput is the input for task creation.
// An empty Difficulty means easy; a non-positive EstimatedMinutes means the default duration.
type CreateInput struct {
	Title            string
	Difficulty       model.Difficulty
	EstimatedMinutes int
}

// CreateOutput is the result of task creation.
type CreateOutput struct {
	Task model.Task
}

// CompleteOutput is the result of task completion.
type CompleteOutput struct {
	Task         model.Task
	Progression  model.Progression
	XPAwarded    int
	LeveledUp    bool
	LevelsGained int
}

// BoardItem is a pending task with its timing relative to the current-time reference.
type BoardItem struct {
	Task   model.Task
	Timing schedule.Timing
}

// Stats is the dashboard view of progression and history.
type Stats struct {
	Level             int
	XP                int
	Threshold         int
	Progress          float64
	Avatar            gamification.Avatar
	CurrentStreak     int
	LongestStreak     int
	TotalXPEarned     int
	CompletedThisWeek int
	CompletedTotal    int
	PendingTotal      int
	Suggestion        time.Time
}
