package fs

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/quipnote/pkg/core"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string      `json:"path"`
	Ext           string      `json:"ext"`
	ReadOnly      bool        `json:"read_only"`
	WatcherActive bool        `json:"watcher_active"`
	LastEvent     *core.Event `json:"last_event,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Path:          s.Path,
		Ext:           s.config.Ext,
		ReadOnly:      s.config.ReadOnly,
		WatcherActive: s.watcherActive,
		LastEvent:     s.lastEvent,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "slot-store:fs"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

func (s *Store) recordEvent(e core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastEvent = &e
}
