// Package memory provides an in-process slot store. Slots live as long as the
// process; it backs tests and the "memory" adapter.
package memory

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"github.com/aretw0/quipnote/pkg/core"
)

// Store implements core.SlotStore on top of go-cache with expiry disabled.
type Store struct {
	items *gocache.Cache
}

// NewStore creates an empty in-memory slot store.
func NewStore() *Store {
	return &Store{items: gocache.New(gocache.NoExpiration, 0)}
}

// Get returns a copy of the slot contents, or core.ErrNotFound when the key
// has never been set or was removed.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, ok := s.items.Get(key)
	if !ok {
		return nil, core.ErrNotFound
	}
	data := v.([]byte)
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores a copy of data under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	blob := make([]byte, len(data))
	copy(blob, data)
	s.items.Set(key, blob, gocache.NoExpiration)
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.items.Delete(key)
	return nil
}

// Close drops every slot. Nothing outlives the Store.
func (s *Store) Close() error {
	s.items.Flush()
	return nil
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	return map[string]int{"slots": s.items.ItemCount()}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "slot-store:memory"
}

var _ core.SlotStore = (*Store)(nil)
