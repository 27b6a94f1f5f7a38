package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"notes-client/config"
)

// OpenStore builds the Store selected by cfg.Session.Backend. The returned
// close function releases backend connections.
func OpenStore(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		return NewMemoryStore(), noop, nil
	case config.SessionBackendFile:
		return NewFileStore(cfg.Session.Path), noop, nil
	case config.SessionBackendRedis:
		c := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := c.Ping(ctx).Err(); err != nil {
			c.Close()
			return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		return NewRedisStore(c, cfg.Redis.Prefix), c.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}
