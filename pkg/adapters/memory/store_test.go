package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quipnote/pkg/adapters/memory"
	"github.com/aretw0/quipnote/pkg/core"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	defer s.Close()

	_, err := s.Get(ctx, "@notes")
	assert.ErrorIs(t, err, core.ErrNotFound)

	blob := []byte(`["a"]`)
	require.NoError(t, s.Set(ctx, "@notes", blob))
	blob[2] = 'z' // callers may reuse their buffer

	got, err := s.Get(ctx, "@notes")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(got))
	assert.Equal(t, map[string]int{"slots": 1}, s.State())

	require.NoError(t, s.Remove(ctx, "@notes"))
	require.NoError(t, s.Remove(ctx, "@notes"))
	_, err = s.Get(ctx, "@notes")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := memory.NewStore()
	assert.ErrorIs(t, s.Set(ctx, "@notes", []byte("[]")), context.Canceled)
}

func TestStore_CloseDropsSlots(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Set(ctx, "@notes", []byte(`["a"]`)))

	require.NoError(t, s.Close())
	_, err := s.Get(ctx, "@notes")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
