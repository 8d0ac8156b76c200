package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-hero/internal/model"
	"task-hero/internal/task/repository"
	"task-hero/internal/task/repository/redis"
)

type fakeClient struct {
	store  map[string]string
	getErr error
	setErr error
}

func (f *fakeClient) Get(ctx context.Context, key string) *goRedis.StringCmd {
	if f.getErr != nil {
		return goRedis.NewStringResult("", f.getErr)
	}
	v, ok := f.store[key]
	if !ok {
		return goRedis.NewStringResult("", goRedis.Nil)
	}
	return goRedis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(ctx context.Context, key string, value any, expiration time.Duration) *goRedis.StatusCmd {
	if f.setErr != nil {
		return goRedis.NewStatusResult("", f.setErr)
	}
	f.store[key] = string(value.([]byte))
	return goRedis.NewStatusResult("OK", nil)
}

func TestRedisRepository(t *testing.T) {
	client := &fakeClient{store: map[string]string{}}
	repo := redis.New(client, "")
	ctx := context.Background()

	_, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	snap := model.Snapshot{Progression: model.Progression{Level: 4, XP: 20, CurrentStreak: 2, LongestStreak: 2}, ThemePreference: model.ThemeLight}
	require.NoError(t, repo.Save(ctx, snap))
	assert.Contains(t, client.store, repository.DefaultKey)

	got, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, snap.Progression, got.Progression)
	assert.Equal(t, snap.ThemePreference, got.ThemePreference)
}

func TestRedisRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	repo := redis.New(&fakeClient{store: map[string]string{}, getErr: errors.New("conn refused"), setErr: errors.New("readonly")}, "k")

	_, _, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrIO)
	assert.ErrorIs(t, repo.Save(ctx, model.Snapshot{}), repository.ErrIO)
}
