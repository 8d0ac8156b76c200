package task

import (
	"context"
	"time"

	"task-hero/internal/model"
)

// UseCase owns the task collection and the progression state.
// Every method is safe for concurrent use; operations are applied one at a time.
type UseCase interface {
	// Create validates input, schedules the task after the last outstanding one
	// and requests a reminder shortly before it starts.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Complete moves a pending task into history and awards its XP.
	Complete(ctx context.Context, taskID string) (CompleteOutput, error)

	SetThemePreference(ctx context.Context, theme model.Theme) error
	ThemePreference() model.Theme
	// EffectiveTheme resolves the preference against the host's colour scheme.
	EffectiveTheme(system model.Theme) model.Theme

	// Restore replaces the whole in-memory state. Malformed values are normalised.
	Restore(snap model.Snapshot)
	Snapshot() model.Snapshot
	// Load restores from the repository once at startup. On error the current
	// state is kept.
	Load(ctx context.Context) error

	Pending() []model.Task
	Completed() []model.Task
	Progression() model.Progression
	Suggestion() time.Time
	Board() []BoardItem
	Stats() Stats

	// Tick advances the current-time reference and recomputes the suggestion.
	Tick(now time.Time)
	// RunClock calls Tick every interval until ctx is done.
	RunClock(ctx context.Context, interval time.Duration)
	// Close waits for queued saves to finish. Later mutations are not persisted.
	Close()
}
