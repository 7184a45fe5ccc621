// Package redis stores slots as plain string keys in Redis, so several
// terminals can share one note list.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/aretw0/quipnote/pkg/core"
)

// DefaultPrefix namespaces slot keys inside a shared Redis database.
const DefaultPrefix = "quipnote:"

// Store implements core.SlotStore with GET / SET / DEL.
type Store struct {
	client *goredis.Client
	prefix string
}

// Config holds the connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewStore connects to Redis using cfg.
func NewStore(cfg Config) *Store {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewStoreWithClient(client, cfg.Prefix)
}

// NewStoreWithClient wraps an existing client.
func NewStoreWithClient(client *goredis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Set writes the whole blob with a single SET, which Redis applies atomically.
func (s *Store) Set(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	opts := s.client.Options()
	return map[string]any{"addr": opts.Addr, "prefix": s.prefix}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "slot-store:redis"
}

var _ core.SlotStore = (*Store)(nil)
