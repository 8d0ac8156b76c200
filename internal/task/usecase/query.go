package usecase

import (
	"time"

	"task-hero/internal/gamification"
	"task-hero/internal/model"
	"task-hero/internal/schedule"
	"task-hero/internal/task"
)

func (uc *implUseCase) Pending() []model.Task {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return model.CloneTasks(uc.pending)
}

func (uc *implUseCase) Completed() []model.Task {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return model.CloneTasks(uc.completed)
}

func (uc *implUseCase) Progression() model.Progression {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.progression
}

func (uc *implUseCase) Suggestion() time.Time {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.suggestion
}

// Board classifies each pending task against the current-time reference.
func (uc *implUseCase) Board() []task.BoardItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := make([]task.BoardItem, 0, len(uc.pending))
	for _, t := range uc.pending {
		items = append(items, task.BoardItem{
			Task:   t.Clone(),
			Timing: schedule.Classify(t, uc.now),
		})
	}
	return items
}

func (uc *implUseCase) Stats() task.Stats {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	summary := uc.engine.Summarize(uc.completed, uc.now)
	return task.Stats{
		Level:             uc.progression.Level,
		XP:                uc.progression.XP,
		Threshold:         uc.engine.Threshold(),
		Progress:          uc.engine.Progress(uc.progression),
		Avatar:            gamification.AvatarForLevel(uc.progression.Level),
		CurrentStreak:     uc.progression.CurrentStreak,
		LongestStreak:     uc.progression.LongestStreak,
		TotalXPEarned:     summary.TotalXPEarned,
		CompletedThisWeek: summary.CompletedThisWeek,
		CompletedTotal:    summary.CompletedTotal,
		PendingTotal:      len(uc.pending),
		Suggestion:        uc.suggestion,
	}
}
