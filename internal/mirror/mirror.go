package mirror

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"langcache/internal/config"
)

const defaultKeyPrefix = "langcache:"

// Mirror copies cache entries somewhere other hosts can read them.
type Mirror interface {
	Put(ctx context.Context, subPath string, data []byte) error
	Close() error
}

// Redis stores each cache entry under <prefix><subPath>.
type Redis struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
}

var _ Mirror = (*Redis)(nil)

// New returns the mirror described by cfg, or Nop when mirroring is disabled.
func New(ctx context.Context, cfg config.Mirror) (Mirror, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}
	return NewRedis(ctx, cfg)
}

// NewRedis connects to redis and verifies the connection.
func NewRedis(ctx context.Context, cfg config.Mirror) (*Redis, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return nil, errors.New("mirror redis url required")
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisFromClient(client, cfg.TTLSeconds, cfg.KeyPrefix), nil
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *redis.Client, ttlSeconds int, keyPrefix string) *Redis {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}
	return &Redis{client: client, ttl: ttl, keyPrefix: keyPrefix}
}

// Key returns the redis key used for subPath.
func (m *Redis) Key(subPath string) string {
	return m.keyPrefix + subPath
}

// Put stores data for subPath, replacing any previous value.
func (m *Redis) Put(ctx context.Context, subPath string, data []byte) error {
	if err := m.client.Set(ctx, m.Key(subPath), string(data), m.ttl).Err(); err != nil {
		return fmt.Errorf("mirror %s: %w", subPath, err)
	}
	return nil
}

// Close closes the redis connection.
func (m *Redis) Close() error {
	return m.client.Close()
}

// Nop discards every entry.
type Nop struct{}

func (Nop) Put(context.Context, string, []byte) error { return nil }

func (Nop) Close() error { return nil }
