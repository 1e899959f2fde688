package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Get when no document is stored under the key.
var ErrNotFound = errors.New("storage: document not found")

// Store is a durable key-value store holding whole JSON documents.
// Put always overwrites the previous value; there is no merge.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config selects and configures a Store backend.
type Config struct {
	Driver     string `default:"sqlite"`
	Namespace  string `default:"pcstore"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"pcstore.db"`

	DatabaseURL string `envconfig:"DATABASE_URL"`

	RedisURL          string `envconfig:"REDIS_URL"`
	RedisReadTimeout  int    `split_words:"true" default:"3"`
	RedisWriteTimeout int    `split_words:"true" default:"3"`
	RedisDialTimeout  int    `split_words:"true" default:"5"`
}

// Key returns the namespaced key for a logical document name.
func (c Config) Key(name string) string {
	if c.Namespace == "" {
		return name
	}
	return c.Namespace + "_" + name
}

// Open connects to the backend named by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverSQLite, "":
		return OpenSQLite(ctx, cfg.SQLitePath)
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("storage: DATABASE_URL is required for the postgres driver")
		}
		return OpenPostgres(ctx, cfg.DatabaseURL)
	case DriverRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("storage: REDIS_URL is required for the redis driver")
		}
		return OpenRedis(ctx, RedisOptions{
			URL:          cfg.RedisURL,
			ReadTimeout:  cfg.RedisReadTimeout,
			WriteTimeout: cfg.RedisWriteTimeout,
			DialTimeout:  cfg.RedisDialTimeout,
		})
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
