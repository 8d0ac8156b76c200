package model

import "time"

// Difficulty rates a task and fixes its XP reward.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// xpRewards is the static difficulty → XP mapping.
var xpRewards = map[Difficulty]int{
	DifficultyEasy:   10,
	DifficultyMedium: 25,
	DifficultyHard:   50,
}

// IsValid reports whether d is one of the known difficulties.
func (d Difficulty) IsValid() bool {
	_, ok := xpRewards[d]
	return ok
}

// XP returns the reward for completing a task of this difficulty (0 if unknown).
func (d Difficulty) XP() int {
	return xpRewards[d]
}

// Status is the lifecycle state of a Task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// DefaultEstimatedMinutes is used when no usable duration is supplied.
const DefaultEstimatedMinutes = 30

// Task is a unit of scheduled work. A completed task is never modified again.
type Task struct {
	ID               string
	Title            string
	Difficulty       Difficulty
	XPAwarded        int
	EstimatedMinutes int
	ScheduledStart   time.Time
	ScheduledEnd     time.Time
	NotificationRef  string
	Status           Status
	CompletedAt      *time.Time
}

// IsCompleted reports whether the task reached its terminal state.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Duration returns the estimated duration as a time.Duration.
func (t Task) Duration() time.Duration {
	return time.Duration(t.EstimatedMinutes) * time.Minute
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		t.CompletedAt = &at
	}
	return t
}

// CloneTasks copies a slice of tasks. A nil input yields an empty slice.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
