// Package fs provides a file-backed core.KeyValue: one file per key inside a
// store directory, written atomically.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/aretw0/folio/pkg/core"
)

// DefaultDir is the store directory created inside the workspace.
const DefaultDir = ".folio"

// Config holds the configuration for the filesystem store.
type Config struct {
	Path      string // store directory, e.g. "./notes/.folio"
	MustExist bool
	ReadOnly  bool
	Logger    *slog.Logger

	// ErrorHandler receives runtime watcher failures that are otherwise only logged.
	ErrorHandler func(error)

	// WatchDebounce collapses bursts of filesystem events per key. Zero means 50ms.
	WatchDebounce time.Duration

	// Clock drives the watcher debounce. Nil means the real clock.
	Clock clockwork.Clock
}

// Store implements core.KeyValue on top of a directory.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	known         map[string]string // last value written or read, per key
	watcherActive bool
	lastEvent     *time.Time
}

// NewStore creates a filesystem-backed store. Call Initialize before use.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Clock == nil {
		config.Clock = clockwork.NewRealClock()
	}
	if config.WatchDebounce <= 0 {
		config.WatchDebounce = 50 * time.Millisecond
	}
	return &Store{
		Path:   config.Path,
		config: config,
		known:  make(map[string]string),
	}
}

// Initialize ensures the store directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("store path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", s.Path)
		}
		return nil
	}
	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Get reads the file holding key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	filename, err := s.filename(key)
	if err != nil {
		return "", false, err
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	value := string(data)
	s.remember(key, value)
	return value, true, nil
}

// Set atomically replaces the file holding key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	filename, err := s.filename(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Remember first so the watcher recognizes the write as ours.
	s.remember(key, value)
	if err := writeFileAtomic(filename, []byte(value), 0644); err != nil {
		s.forget(key)
		return err
	}
	s.config.Logger.Debug("key written", "key", key, "bytes", len(value))
	return nil
}

// Remove deletes the file holding key.
func (s *Store) Remove(ctx context.Context, key string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	filename, err := s.filename(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.forget(key)
	if err := os.Remove(filename); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// filename maps key to a file directly inside the store directory.
func (s *Store) filename(key string) (string, error) {
	if key == "" || key == "." || key == ".." || filepath.Base(key) != key {
		return "", fmt.Errorf("invalid key: %q", key)
	}
	return filepath.Join(s.Path, key), nil
}

func (s *Store) remember(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.known[key] = value
}

func (s *Store) forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.known, key)
}

var _ core.KeyValue = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
