package bolt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"

	"task-hero/internal/task/repository"
)

const bucketName = "state"

type implRepository struct {
	db  *bbolt.DB
	key []byte
}

// New opens (creating if needed) the bolt file at path and stores the
// snapshot under key.
func New(path, key string) (*implRepository, error) {
	if key == "" {
		key = repository.DefaultKey
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrIO, err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", repository.ErrIO, path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create bucket: %v", repository.ErrIO, err)
	}

	return &implRepository{db: db, key: []byte(key)}, nil
}

// Close releases the database file lock.
func (r *implRepository) Close() error {
	return r.db.Close()
}
