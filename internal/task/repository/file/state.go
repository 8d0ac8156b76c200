package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"task-hero/internal/model"
	"task-hero/internal/task/repository"
)

func (r *implRepository) Load(ctx context.Context) (model.Snapshot, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Snapshot{}, false, nil
	}
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("%w: %v", repository.ErrIO, err)
	}

	snap, err := model.DecodeSnapshot(data)
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("%w: %v", repository.ErrIO, err)
	}
	return snap, true, nil
}

// Save writes to a temp file in the same directory and renames it over the
// target so a crash never leaves a half-written snapshot.
func (r *implRepository) Save(ctx context.Context, snap model.Snapshot) error {
	data, err := model.EncodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrIO, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrIO, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrIO, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", repository.ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrIO, err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrIO, err)
	}
	return nil
}
