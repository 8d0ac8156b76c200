package redis

import (
	"context"
	"time"

	goRedis "github.com/redis/go-redis/v9"

	"task-hero/internal/task/repository"
)

// Client is the subset of *goRedis.Client the repository uses.
type Client interface {
	Get(ctx context.Context, key string) *goRedis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goRedis.StatusCmd
}

type implRepository struct {
	client Client
	key    string
}

// New stores the snapshot as a JSON string under key.
func New(client Client, key string) repository.StateRepository {
	if key == "" {
		key = repository.DefaultKey
	}
	return &implRepository{client: client, key: key}
}

// NewClient parses url, applies overrides and pings the server.
func NewClient(ctx context.Context, url, password string, db int) (*goRedis.Client, error) {
	opts, err := goRedis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if password != "" {
		opts.Password = password
	}
	if db != 0 {
		opts.DB = db
	}

	client := goRedis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
