package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"task-hero/internal/model"
	"task-hero/internal/task"
)

// Complete moves the task into history, awards its XP and updates the streak.
func (uc *implUseCase) Complete(ctx context.Context, taskID string) (task.CompleteOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := -1
	for i := range uc.pending {
		if uc.pending[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		uc.l.Debugf(ctx, "task.usecase.Complete: task %q not found", taskID)
		return task.CompleteOutput{}, fmt.Errorf("%w: %q", task.ErrTaskNotFound, taskID)
	}

	t := uc.pending[idx]
	uc.cancelReminder(ctx, t)

	award := t.XPAwarded
	if award <= 0 {
		award = t.Difficulty.XP()
	}

	now := uc.clock()
	var lastCompletedAt *time.Time
	if n := len(uc.completed); n > 0 {
		lastCompletedAt = uc.completed[n-1].CompletedAt
	}

	xp := uc.engine.ApplyXP(uc.progression, award)
	uc.progression = uc.engine.ApplyStreak(xp.Progression, now, lastCompletedAt)

	completedAt := now
	t.Status = model.StatusCompleted
	t.CompletedAt = &completedAt
	t.NotificationRef = ""
	t.XPAwarded = award

	uc.pending = slices.Delete(uc.pending, idx, idx+1)
	uc.completed = append(uc.completed, t)

	uc.refresh(now)
	uc.persist(ctx)

	uc.l.Infof(ctx, "task.usecase.Complete: completed task id=%s xp=+%d streak=%d", t.ID, award, uc.progression.CurrentStreak)
	if xp.LeveledUp {
		uc.l.Infof(ctx, "task.usecase.Complete: level up to %d (+%d)", uc.progression.Level, xp.LevelsGained)
	}

	return task.CompleteOutput{
		Task:         t.Clone(),
		Progression:  uc.progression,
		XPAwarded:    award,
		LeveledUp:    xp.LeveledUp,
		LevelsGained: xp.LevelsGained,
	}, nil
}
