package repository

import (
	"context"
	"errors"

	"task-hero/internal/model"
)

// ErrIO wraps every storage failure.
var ErrIO = errors.New("storage I/O failure")

// StateRepository durably mirrors the engine snapshot. Save always writes the
// whole snapshot, so overlapping saves resolve last-write-wins. Implementations
// must be safe for concurrent use.
type StateRepository interface {
	// Load returns the stored snapshot; found is false when nothing was saved yet.
	Load(ctx context.Context) (snap model.Snapshot, found bool, err error)
	Save(ctx context.Context, snap model.Snapshot) error
}
