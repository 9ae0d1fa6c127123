package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions selects the redis server used by the redis backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// InitRedis connects and pings the server so a bad address fails at startup.
func InitRedis(o RedisOptions) (*redis.Client, error) {
	addr := o.Addr
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     o.Password,
		DB:           o.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func NewRedis(client *redis.Client) Backend {
	return &redisBackend{c: client}
}

type redisBackend struct {
	c *redis.Client
}

func (b *redisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := b.c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (b *redisBackend) Set(ctx context.Context, key string, raw []byte) error {
	return b.c.Set(ctx, key, raw, 0).Err()
}

func (b *redisBackend) Remove(ctx context.Context, key string) error {
	return b.c.Del(ctx, key).Err()
}

func (b *redisBackend) Close() error {
	return b.c.Close()
}
