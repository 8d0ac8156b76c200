package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"task-hero/internal/model"
	"task-hero/internal/notifier"
	"task-hero/internal/schedule"
	"task-hero/internal/task"
)

// Create adds a pending task starting at the current suggestion.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		uc.l.Debugf(ctx, "task.usecase.Create: rejected empty title")
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyEasy
	}
	if !difficulty.IsValid() {
		uc.l.Debugf(ctx, "task.usecase.Create: rejected difficulty %q", input.Difficulty)
		return task.CreateOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidDifficulty, input.Difficulty)
	}

	minutes := input.EstimatedMinutes
	if minutes <= 0 {
		minutes = uc.defaultMinutes
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.clock()
	start := schedule.SuggestStart(uc.pending, now)
	t := model.Task{
		ID:               uuid.NewString(),
		Title:            title,
		Difficulty:       difficulty,
		XPAwarded:        difficulty.XP(),
		EstimatedMinutes: minutes,
		ScheduledStart:   start,
		ScheduledEnd:     start.Add(time.Duration(minutes) * time.Minute),
		Status:           model.StatusPending,
	}

	if trigger := start.Add(-uc.reminderLead); trigger.After(now) {
		t.NotificationRef = uc.scheduleReminder(ctx, t, trigger)
	}

	uc.pending = append(uc.pending, t)
	sort.SliceStable(uc.pending, func(i, j int) bool {
		return uc.pending[i].ScheduledStart.Before(uc.pending[j].ScheduledStart)
	})

	uc.refresh(now)
	uc.persist(ctx)

	uc.l.Infof(ctx, "task.usecase.Create: created task id=%s difficulty=%s start=%s", t.ID, t.Difficulty, t.ScheduledStart.Format(time.RFC3339))
	return task.CreateOutput{Task: t.Clone()}, nil
}

// scheduleReminder returns the reminder handle, or "" when scheduling failed.
func (uc *implUseCase) scheduleReminder(ctx context.Context, t model.Task, trigger time.Time) string {
	if uc.notifier == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, uc.adapterTimeout)
	defer cancel()

	handle, err := uc.notifier.Schedule(ctx, task.ReminderTitle, t.Title, trigger)
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.scheduleReminder: task=%s (non-fatal): %v", t.ID, err)
		return ""
	}
	return handle
}

func (uc *implUseCase) cancelReminder(ctx context.Context, t model.Task) {
	if uc.notifier == nil || t.NotificationRef == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, uc.adapterTimeout)
	defer cancel()

	err := uc.notifier.Cancel(ctx, t.NotificationRef)
	switch {
	case err == nil:
	case errors.Is(err, notifier.ErrNotFound):
		uc.l.Debugf(ctx, "task.usecase.cancelReminder: task=%s reminder already gone", t.ID)
	default:
		uc.l.Warnf(ctx, "task.usecase.cancelReminder: task=%s (non-fatal): %v", t.ID, err)
	}
}
