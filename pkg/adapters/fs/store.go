package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/quipnote/pkg/core"
)

// DefaultExt is used for slot files when no codec extension is configured.
const DefaultExt = ".json"

// Store implements core.SlotStore with one file per slot inside a directory.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastEvent     *core.Event
}

// Config holds the configuration for the filesystem slot store.
type Config struct {
	Path      string
	MustExist bool
	ReadOnly  bool
	Ext       string // e.g. ".json"; matches the codec in use
	Logger    *slog.Logger

	// ErrorHandler receives runtime watcher failures, which are otherwise only logged.
	ErrorHandler func(error)
}

// NewStore creates a new filesystem-backed slot store.
func NewStore(config Config) *Store {
	if config.Ext == "" {
		config.Ext = DefaultExt
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Initialize makes sure the data directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if err != nil {
			return fmt.Errorf("data directory %s: %w", s.Path, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("data directory %s is not a directory", s.Path)
		}
		return nil
	}

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// FileName maps a slot key to the file that holds it. Characters that are not
// safe in a filename are replaced and a leading '@' is dropped.
func (s *Store) FileName(key string) string {
	name := strings.TrimPrefix(key, "@")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" {
		name = "_"
	}
	return name + s.config.Ext
}

func (s *Store) slotPath(key string) string {
	return filepath.Join(s.Path, s.FileName(key))
}

// Get reads the whole slot.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.slotPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return data, nil
}

// Set replaces the slot with an atomic temp-file write.
func (s *Store) Set(ctx context.Context, key string, data []byte) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeFileAtomic(s.slotPath(key), data, 0644); err != nil {
		return err
	}
	s.config.Logger.Debug("slot written", "key", key, "bytes", len(data))
	return nil
}

// Remove deletes the slot file if it exists.
func (s *Store) Remove(ctx context.Context, key string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(s.slotPath(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove slot %s: %w", key, err)
	}
	s.config.Logger.Debug("slot removed", "key", key)
	return nil
}

// Close is a no-op; files are not held open between calls.
func (s *Store) Close() error {
	return nil
}

var _ core.SlotStore = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
