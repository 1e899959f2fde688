package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures the redis backend. Timeouts are in seconds.
type RedisOptions struct {
	URL          string
	ReadTimeout  int
	WriteTimeout int
	DialTimeout  int
}

type redisStore struct {
	client *redis.Client
}

// OpenRedis parses opts.URL, applies the timeouts and pings the server.
func OpenRedis(ctx context.Context, opts RedisOptions) (Store, error) {
	ropts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	ropts.ReadTimeout = time.Duration(opts.ReadTimeout) * time.Second
	ropts.WriteTimeout = time.Duration(opts.WriteTimeout) * time.Second
	ropts.DialTimeout = time.Duration(opts.DialTimeout) * time.Second

	client := redis.NewClient(ropts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewRedis(client), nil
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (s *redisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
