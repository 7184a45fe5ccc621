// Package screen is the presentation surface. It owns the joke and notes
// interactions, exposes their state as immutable views and routes user
// actions to them. The two interactions never share data.
package screen

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle"

	"github.com/aretw0/quipnote/pkg/core"
	"github.com/aretw0/quipnote/pkg/joke"
	"github.com/aretw0/quipnote/pkg/notes"
)

// View is everything a renderer needs, copied out of the live state.
type View struct {
	Joke  joke.View
	Notes notes.View
	Input string
}

// Screen wires one joke fetcher and one notes store to a single surface.
type Screen struct {
	jokes  *joke.Fetcher
	notes  *notes.Store
	slots  core.SlotStore
	logger *slog.Logger

	mu    sync.RWMutex
	input string
}

// New creates a Screen. slots is the store behind notes; it is closed by Close.
func New(jokes *joke.Fetcher, store *notes.Store, slots core.SlotStore, logger *slog.Logger) *Screen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Screen{jokes: jokes, notes: store, slots: slots, logger: logger}
}

// Start loads the persisted notes. Until it returns the notes list is not
// authoritative. A load failure is kept in the notes view and also returned.
func (s *Screen) Start(ctx context.Context) error {
	return s.notes.Load(ctx)
}

// FetchJoke runs the joke interaction.
func (s *Screen) FetchJoke(ctx context.Context) error {
	return s.jokes.Fetch(ctx)
}

// SetInput replaces the text in the note input.
func (s *Screen) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = text
}

// Submit adds the current input as a note.
func (s *Screen) Submit(ctx context.Context) error {
	s.mu.RLock()
	text := s.input
	s.mu.RUnlock()
	return s.AddNote(ctx, text)
}

// AddNote adds text as a note. The input is cleared whenever a note was
// appended, even if saving it failed.
func (s *Screen) AddNote(ctx context.Context, text string) error {
	added, err := s.notes.Add(ctx, text)
	if added {
		s.SetInput("")
	}
	return err
}

// ClearNotes empties the list and the slot.
func (s *Screen) ClearNotes(ctx context.Context) error {
	return s.notes.Clear(ctx)
}

// ReloadNotes re-reads the slot, e.g. after another process changed it.
func (s *Screen) ReloadNotes(ctx context.Context) error {
	return s.notes.Reload(ctx)
}

// View returns a snapshot of the whole surface.
func (s *Screen) View() View {
	s.mu.RLock()
	input := s.input
	s.mu.RUnlock()
	return View{
		Joke:  s.jokes.Snapshot(),
		Notes: s.notes.Snapshot(),
		Input: input,
	}
}

// Dispatch runs action in the background so the caller keeps accepting input
// while it is pending. Errors are already reflected in the view, so they are
// only logged here. The returned channel is closed when action returns.
func (s *Screen) Dispatch(ctx context.Context, name string, action func(context.Context) error) <-chan struct{} {
	done := make(chan struct{})
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(done)
		if err := action(ctx); err != nil {
			s.logger.Debug("action finished with error", "action", name, "error", err)
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("action panicked", "action", name, "error", err)
	}))
	return done
}

// ErrNotWatchable is returned by Follow when the slot store cannot report
// outside changes.
var ErrNotWatchable = errors.New("slot store does not support watching")

// Follow reloads the notes whenever another process changes the slot and
// calls onChange with the fresh view. It blocks until ctx is done.
func (s *Screen) Follow(ctx context.Context, onChange func(core.Event, View)) error {
	w, ok := s.slots.(core.Watchable)
	if !ok {
		return ErrNotWatchable
	}
	pattern := ""
	if n, ok := s.slots.(interface{ FileName(string) string }); ok {
		pattern = n.FileName(s.notes.Key())
	}
	events, err := w.Watch(ctx, pattern)
	if err != nil {
		return err
	}
	for e := range events {
		_ = s.notes.Reload(ctx)
		if onChange != nil {
			onChange(e, s.View())
		}
	}
	return nil
}

// Close releases the slot store.
func (s *Screen) Close() error {
	if s.slots == nil {
		return nil
	}
	return s.slots.Close()
}

// ScreenState aggregates the component states for the status command.
type ScreenState struct {
	Joke  any    `json:"joke"`
	Notes any    `json:"notes"`
	Store string `json:"store"`
	Slots any    `json:"slots,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Screen) State() any {
	st := ScreenState{
		Joke:  s.jokes.State(),
		Notes: s.notes.State(),
		Store: "unknown",
	}
	if c, ok := s.slots.(introspection.Component); ok {
		st.Store = c.ComponentType()
	}
	if i, ok := s.slots.(introspection.Introspectable); ok {
		st.Slots = i.State()
	}
	return st
}

// ComponentType implements introspection.Component.
func (s *Screen) ComponentType() string {
	return "screen"
}

var _ core.Component = (*Screen)(nil)
