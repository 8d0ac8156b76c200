package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"task-hero/internal/model"
)

func (uc *implUseCase) Snapshot() model.Snapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// Restore replaces the state with a normalised copy of snap. It does not save.
func (uc *implUseCase) Restore(snap model.Snapshot) {
	pending := make([]model.Task, 0, len(snap.Tasks))
	for _, t := range snap.Tasks {
		t = uc.normalizeTask(t.Clone())
		t.Status = model.StatusPending
		t.CompletedAt = nil
		pending = append(pending, t)
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ScheduledStart.Before(pending[j].ScheduledStart)
	})

	completed := make([]model.Task, 0, len(snap.CompletedTasks))
	for _, t := range snap.CompletedTasks {
		t = uc.normalizeTask(t.Clone())
		t.Status = model.StatusCompleted
		t.NotificationRef = ""
		completed = append(completed, t)
	}

	theme := snap.ThemePreference
	if !theme.IsValid() {
		theme = model.ThemeSystem
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.pending = pending
	uc.completed = completed
	uc.progression = uc.normalizeProgression(snap.Progression)
	uc.theme = theme
	uc.refresh(uc.clock())
}

func (uc *implUseCase) normalizeTask(t model.Task) model.Task {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if !t.Difficulty.IsValid() {
		t.Difficulty = model.DifficultyEasy
	}
	if t.XPAwarded <= 0 {
		t.XPAwarded = t.Difficulty.XP()
	}
	if t.EstimatedMinutes <= 0 {
		t.EstimatedMinutes = uc.defaultMinutes
	}
	t.ScheduledEnd = t.ScheduledStart.Add(time.Duration(t.EstimatedMinutes) * time.Minute)
	return t
}

func (uc *implUseCase) normalizeProgression(p model.Progression) model.Progression {
	if p.Level < 1 {
		p.Level = 1
	}
	// Out-of-range XP is rolled over into levels; negative XP becomes 0.
	xp := p.XP
	p.XP = 0
	p = uc.engine.ApplyXP(p, xp).Progression

	if p.CurrentStreak < 0 {
		p.CurrentStreak = 0
	}
	if p.LongestStreak < p.CurrentStreak {
		p.LongestStreak = p.CurrentStreak
	}
	return p
}

func (uc *implUseCase) Load(ctx context.Context) error {
	if uc.repo == nil {
		return nil
	}

	snap, found, err := uc.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("task.usecase.Load: %w", err)
	}
	if !found {
		uc.l.Infof(ctx, "task.usecase.Load: no saved state, starting fresh")
		return nil
	}

	uc.Restore(snap)
	uc.l.Infof(ctx, "task.usecase.Load: restored %d pending and %d completed tasks", len(snap.Tasks), len(snap.CompletedTasks))
	return nil
}
