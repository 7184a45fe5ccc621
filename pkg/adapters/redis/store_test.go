package redis_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quipnote/pkg/adapters/redis"
	"github.com/aretw0/quipnote/pkg/core"
)

// Set QUIPNOTE_REDIS_ADDR (e.g. localhost:6379) to run against a real server.
func newStore(t *testing.T) *redis.Store {
	t.Helper()
	addr := os.Getenv("QUIPNOTE_REDIS_ADDR")
	if addr == "" {
		t.Skip("QUIPNOTE_REDIS_ADDR not set")
	}
	s := redis.NewStore(redis.Config{Addr: addr, Prefix: "quipnote-test:" + uuid.NewString() + ":"})
	require.NoError(t, s.Ping(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Get(ctx, "@notes")
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, s.Set(ctx, "@notes", []byte(`["a","b"]`)))
	got, err := s.Get(ctx, "@notes")
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(got))

	require.NoError(t, s.Remove(ctx, "@notes"))
	require.NoError(t, s.Remove(ctx, "@notes"))
	_, err = s.Get(ctx, "@notes")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestStore_Unreachable(t *testing.T) {
	s := redis.NewStore(redis.Config{Addr: "127.0.0.1:1"})
	defer s.Close()

	_, err := s.Get(context.Background(), "@notes")
	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrNotFound)
}
