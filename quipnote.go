package quipnote

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/quipnote/internal/platform"
	"github.com/aretw0/quipnote/pkg/core"
	"github.com/aretw0/quipnote/pkg/screen"
)

// Screen is a public alias for the presentation surface.
type Screen = screen.Screen

// --- Configuration ---

// Option defines a functional option for configuring quipnote.
type Option = platform.Option

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithAdapter selects the slot store by name ("fs", "memory", "redis").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithSlotStore injects a custom slot store.
func WithSlotStore(slots core.SlotStore) Option {
	return platform.WithSlotStore(slots)
}

// WithCodec selects the slot encoding ("json", "yaml").
func WithCodec(name string) Option {
	return platform.WithCodec(name)
}

// WithSlotKey overrides the slot holding the notes.
func WithSlotKey(key string) Option {
	return platform.WithSlotKey(key)
}

// WithJokeURL overrides the joke endpoint.
func WithJokeURL(url string) Option {
	return platform.WithJokeURL(url)
}

// WithHTTPClient sets the client used for joke requests.
func WithHTTPClient(client *http.Client) Option {
	return platform.WithHTTPClient(client)
}

// WithTimeout bounds each joke request; zero means none.
func WithTimeout(d time.Duration) Option {
	return platform.WithTimeout(d)
}

// WithReadOnly opens the slot directory read-only.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithMustExist requires the data directory to exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithRedis sets the server for the redis adapter.
func WithRedis(addr string, db int) Option {
	return platform.WithRedis(addr, db)
}

// --- Factory ---

// New creates a screen backed by dataDir. Call Start to load the notes.
func New(dataDir string, opts ...Option) (*Screen, error) {
	return platform.New(dataDir, opts...)
}
