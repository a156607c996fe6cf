package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ParseURL validates a Redis connection URL
func ParseURL(url string) (*redis.Options, error) {
	if url == "" {
		return nil, fmt.Errorf("redis URL is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return opts, nil
}

// Connect creates a client and checks the server is reachable
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := ParseURL(url)
	if err != nil {
		return nil, err
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}

// WordRepo implements repository.WordRepository with a single Redis key
type WordRepo struct {
	client redis.Cmdable
	key    string
}

// NewWordRepo creates a new word repository bound to one key
func NewWordRepo(client redis.Cmdable, key string) *WordRepo {
	return &WordRepo{client: client, key: key}
}

// LoadWords returns the stored blob, or nil if the key does not exist
func (r *WordRepo) LoadWords(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SaveWords overwrites the key with the full word list, without expiry
func (r *WordRepo) SaveWords(ctx context.Context, data []byte) error {
	return r.client.Set(ctx, r.key, data, 0).Err()
}
