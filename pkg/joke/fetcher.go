package joke

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/quipnote/pkg/core"
)

// View is an immutable snapshot of the joke panel.
type View struct {
	Joke    core.Joke
	HasJoke bool
	Busy    bool
	Err     error
}

// Visible reports whether the joke lines should be drawn. A stale joke stays
// in memory while a fetch is pending or failed, but is not shown.
func (v View) Visible() bool {
	return v.HasJoke && !v.Busy && v.Err == nil
}

// Message is the fixed error line, or "" when there is no error.
func (v View) Message() string {
	return core.Message(v.Err)
}

// Fetcher owns the joke interaction state: Idle -> Busy -> {Success, Failure}.
type Fetcher struct {
	source core.JokeSource
	logger *slog.Logger

	mu       sync.RWMutex
	joke     core.Joke
	hasJoke  bool
	err      error
	inFlight int

	// started numbers each Fetch call; settled is the newest call that has
	// written its result.
	started uint64
	settled uint64
}

// NewFetcher creates a Fetcher reading from source.
func NewFetcher(source core.JokeSource, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Fetcher{source: source, logger: logger}
}

// Fetch runs one fetch. Overlapping calls are allowed; a response that
// settles after a newer call has already settled is dropped. The returned
// error is the one stored for display, if this call's result was kept.
func (f *Fetcher) Fetch(ctx context.Context) error {
	f.mu.Lock()
	f.started++
	gen := f.started
	f.inFlight++
	f.err = nil
	f.mu.Unlock()

	j, err := f.source.Fetch(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight--

	if gen < f.settled {
		f.logger.Debug("dropping stale joke response", "generation", gen, "settled", f.settled)
		return nil
	}
	f.settled = gen

	if err != nil {
		f.logger.Warn("joke fetch failed", "error", err)
		f.err = err
		return err
	}
	f.joke = j
	f.hasJoke = true
	f.err = nil
	return nil
}

// Snapshot returns the current view.
func (f *Fetcher) Snapshot() View {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return View{
		Joke:    f.joke,
		HasJoke: f.hasJoke,
		Busy:    f.inFlight > 0,
		Err:     f.err,
	}
}

// FetcherState exposes internal state for observability.
type FetcherState struct {
	InFlight int    `json:"in_flight"`
	Started  uint64 `json:"started"`
	HasJoke  bool   `json:"has_joke"`
	Error    string `json:"error,omitempty"`
}

// State implements introspection.Introspectable.
func (f *Fetcher) State() any {
	f.mu.RLock()
	defer f.mu.RUnlock()
	st := FetcherState{InFlight: f.inFlight, Started: f.started, HasJoke: f.hasJoke}
	if f.err != nil {
		st.Error = f.err.Error()
	}
	return st
}

// ComponentType implements introspection.Component.
func (f *Fetcher) ComponentType() string {
	return "joke-fetcher"
}

var _ introspection.Introspectable = (*Fetcher)(nil)
var _ introspection.Component = (*Fetcher)(nil)
