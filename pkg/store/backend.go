package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Backend is the key-value contract the gateway persists through. A missing
// key is reported as ok == false with a nil error, and removing a missing key
// succeeds.
type Backend interface {
	Get(ctx context.Context, key string) (raw []byte, ok bool, err error)
	Set(ctx context.Context, key string, raw []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

const (
	BackendDiskv  = "diskv"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open builds the backend named by cfg.
func Open(cfg Config) (Backend, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Backend())) {
	case "", BackendDiskv:
		return NewDiskv(cfg.BasePath()), nil
	case BackendMemory:
		return NewMemory(), nil
	case BackendRedis:
		client, err := InitRedis(cfg.Redis())
		if err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
		return NewRedis(client), nil
	case BackendSQLite:
		dsn := cfg.SQLiteDSN()
		if dsn == "" {
			if err := os.MkdirAll(cfg.BasePath(), 0o755); err != nil {
				return nil, fmt.Errorf("store: %w", err)
			}
			dsn = filepath.Join(cfg.BasePath(), "maplog.sqlite")
		}
		return NewSQLite(dsn)
	default:
		return nil, fmt.Errorf("store: unsupported backend %q", cfg.Backend())
	}
}
