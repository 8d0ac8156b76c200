package bolt

import (
	"context"
	"fmt"

	bbolt "go.etcd.io/bbolt"

	"task-hero/internal/model"
	"task-hero/internal/task/repository"
)

func (r *implRepository) Load(ctx context.Context) (model.Snapshot, bool, error) {
	var data []byte
	err := r.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get(r.key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("%w: %v", repository.ErrIO, err)
	}
	if data == nil {
		return model.Snapshot{}, false, nil
	}

	snap, err := model.DecodeSnapshot(data)
	if err != nil {
		return model.Snapshot{}, false, fmt.Errorf("%w: %v", repository.ErrIO, err)
	}
	return snap, true, nil
}

func (r *implRepository) Save(ctx context.Context, snap model.Snapshot) error {
	data, err := model.EncodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrIO, err)
	}

	if err := r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put(r.key, data)
	}); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrIO, err)
	}
	return nil
}
