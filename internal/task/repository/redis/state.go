package redis

import (
	"context"
	"errors"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"

	"task-hero/internal/model"
	"task-hero/internal/task/repository"
)

func (r *implRepository) Load(ctx context.Context) (model.Snapshot, bool, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, goRedis.Nil) {
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

func (r *implRepository) Save(ctx context.Context, snap model.Snapshot) error {
	data, err := model.EncodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrIO, err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrIO, err)
	}
	return nil
}
