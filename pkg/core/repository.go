package core

import "context"

// SlotStore is local key-value durable storage. Each slot holds one blob that
// is always replaced as a whole.
type SlotStore interface {
	// Get returns the blob stored under key, or ErrNotFound when the slot is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the slot atomically.
	Set(ctx context.Context, key string, data []byte) error

	// Remove deletes the slot. Removing an absent slot is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}

// Watchable is implemented by slot stores that can report outside changes.
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Codec encodes a NoteList into the blob stored in a slot.
type Codec interface {
	// Name is the registry name ("json", "yaml").
	Name() string
	// Ext is the file extension used by file based slot stores.
	Ext() string
	Encode(notes NoteList) ([]byte, error)
	// Decode returns ErrCorrupted when data is well formed but is not a
	// sequence of strings, and a plain parse error otherwise.
	Decode(data []byte) (NoteList, error)
}

// JokeSource performs a single joke fetch.
type JokeSource interface {
	Fetch(ctx context.Context) (Joke, error)
}
