// Package notes keeps an ordered list of short text notes in memory and
// mirrors it into a single storage slot.
//
// Every mutation is optimistic: memory changes first, then the full list is
// written (or the slot removed). A failed write is reported but never rolled
// back, so memory may run ahead of the slot until the next successful write.
package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/quipnote/pkg/core"
)

// View is an immutable snapshot of the notes panel.
type View struct {
	Notes  core.NoteList
	Busy   bool
	Err    error
	Loaded bool
}

// Message is the fixed error line, or "" when there is no error.
func (v View) Message() string {
	return core.Message(v.Err)
}

// Store owns the in-memory note list.
type Store struct {
	slots  core.SlotStore
	codec  core.Codec
	key    string
	logger *slog.Logger

	mu     sync.RWMutex
	notes  core.NoteList
	busy   int
	err    error
	loaded bool
	writes uint64

	// writeMu serializes persistence so each write carries the list as of
	// its own mutation and slot writes land in mutation order.
	writeMu sync.Mutex
}

// NewStore creates a Store persisting to key in slots. An empty key selects
// core.DefaultSlotKey.
func NewStore(slots core.SlotStore, codec core.Codec, key string, logger *slog.Logger) *Store {
	if key == "" {
		key = core.DefaultSlotKey
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		slots:  slots,
		codec:  codec,
		key:    key,
		logger: logger.With("slot", key),
		notes:  core.NoteList{},
	}
}

// Key returns the slot key.
func (s *Store) Key() string {
	return s.key
}

// Load reads the slot and replaces the in-memory list. An absent slot is an
// empty list with no error. A slot that parses to something other than a
// list of strings resets the list and reports core.ErrCorrupted; any other
// read or parse failure resets the list and reports core.ErrLoad.
func (s *Store) Load(ctx context.Context) error {
	s.begin()
	defer s.end()

	// Held through the assignment so a concurrent Add cannot persist a list
	// that this load then overwrites in memory.
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	notes, err := s.read(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	s.notes = notes
	s.err = err
	if err != nil {
		s.logger.Warn("failed to load notes", "error", err)
		return err
	}
	s.logger.Debug("notes loaded", "count", len(notes))
	return nil
}

// Reload is Load under another name; it re-reads the slot after an outside change.
func (s *Store) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *Store) read(ctx context.Context) (core.NoteList, error) {
	data, err := s.slots.Get(ctx, s.key)

	if errors.Is(err, core.ErrNotFound) {
		return core.NoteList{}, nil
	}
	if err != nil {
		return core.NoteList{}, fmt.Errorf("%w: %w", core.ErrLoad, err)
	}

	notes, err := s.codec.Decode(data)
	if err != nil {
		return core.NoteList{}, fmt.Errorf("%w: %w", core.ErrLoad, err)
	}
	return notes, nil
}

// Add appends the trimmed text and persists the whole list. Blank input is a
// no-op and reports false. On a failed write the note stays in memory and the
// returned error wraps core.ErrSave.
func (s *Store) Add(ctx context.Context, text string) (bool, error) {
	note, ok := core.NormalizeNote(text)
	if !ok {
		return false, nil
	}

	s.begin()
	defer s.end()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.notes = append(s.notes, note)
	s.err = nil
	snapshot := s.notes.Clone()
	s.mu.Unlock()

	if err := s.persist(ctx, snapshot); err != nil {
		err = fmt.Errorf("%w: %w", core.ErrSave, err)
		s.fail(err)
		return true, err
	}
	return true, nil
}

func (s *Store) persist(ctx context.Context, notes core.NoteList) error {
	data, err := s.codec.Encode(notes)
	if err != nil {
		return err
	}
	if err := s.slots.Set(ctx, s.key, data); err != nil {
		return err
	}
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	s.logger.Debug("notes saved", "count", len(notes))
	return nil
}

// Clear empties the list and removes the slot entirely. On a failed removal
// the list stays empty and the returned error wraps core.ErrClear.
func (s *Store) Clear(ctx context.Context) error {
	s.begin()
	defer s.end()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.notes = core.NoteList{}
	s.err = nil
	s.mu.Unlock()

	if err := s.slots.Remove(ctx, s.key); err != nil {
		err = fmt.Errorf("%w: %w", core.ErrClear, err)
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	s.logger.Debug("notes cleared")
	return nil
}

func (s *Store) fail(err error) {
	s.logger.Warn("notes operation failed", "error", err)
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *Store) begin() {
	s.mu.Lock()
	s.busy++
	s.mu.Unlock()
}

func (s *Store) end() {
	s.mu.Lock()
	s.busy--
	s.mu.Unlock()
}

// Notes returns a copy of the current list.
func (s *Store) Notes() core.NoteList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notes.Clone()
}

// Snapshot returns the current view.
func (s *Store) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return View{
		Notes:  s.notes.Clone(),
		Busy:   s.busy > 0,
		Err:    s.err,
		Loaded: s.loaded,
	}
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Key    string `json:"key"`
	Codec  string `json:"codec"`
	Count  int    `json:"count"`
	Loaded bool   `json:"loaded"`
	Writes uint64 `json:"writes"`
	Error  string `json:"error,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := StoreState{
		Key:    s.key,
		Codec:  s.codec.Name(),
		Count:  len(s.notes),
		Loaded: s.loaded,
		Writes: s.writes,
	}
	if s.err != nil {
		st.Error = s.err.Error()
	}
	return st
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "notes-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
