package file

import (
	"sync"

	"task-hero/internal/task/repository"
)

type implRepository struct {
	path string
	mu   sync.Mutex
}

// New stores the snapshot as a JSON document at path.
func New(path string) repository.StateRepository {
	return &implRepository{path: path}
}
