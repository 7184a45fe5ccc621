package platform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/quipnote/pkg/core"
)

// options holds the internal configuration for a quipnote screen.
type options struct {
	logger     *slog.Logger
	adapter    string
	slots      core.SlotStore
	codec      string
	slotKey    string
	jokeURL    string
	httpClient *http.Client
	timeout    time.Duration
	readOnly   bool
	mustExist  bool
	redisAddr  string
	redisDB    int
}

// Option defines a functional option for configuring quipnote.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
		codec:   "json",
		slotKey: core.DefaultSlotKey,
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAdapter selects the slot store by name: "fs" (default), "memory" or "redis".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithSlotStore injects a custom slot store. The adapter name is ignored.
func WithSlotStore(slots core.SlotStore) Option {
	return func(o *options) {
		o.slots = slots
	}
}

// WithCodec selects how the note list is encoded in its slot ("json" or "yaml").
func WithCodec(name string) Option {
	return func(o *options) {
		o.codec = name
	}
}

// WithSlotKey overrides the slot the note list is stored under.
func WithSlotKey(key string) Option {
	return func(o *options) {
		o.slotKey = key
	}
}

// WithJokeURL overrides the joke endpoint.
func WithJokeURL(url string) Option {
	return func(o *options) {
		o.jokeURL = url
	}
}

// WithHTTPClient sets the client used for joke requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTimeout bounds each joke request. Zero keeps the transport default,
// which is no timeout at all.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithReadOnly opens the fs adapter read-only: saves and clears fail with
// core.ErrReadOnly and the data directory is never created.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist requires the data directory to exist already.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithRedis sets the server used by the "redis" adapter.
func WithRedis(addr string, db int) Option {
	return func(o *options) {
		o.redisAddr = addr
		o.redisDB = db
	}
}
