package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/folio/pkg/core"
)

// ignorePatterns are never reported as key changes.
var ignorePatterns = []string{TempFilePattern, "*.swp", "*~", ".DS_Store"}

// Watch reports writes made to the store directory by other processes.
// Writes issued through this Store are recognized by content and skipped.
// The returned channel is closed once ctx is done.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	events := make(chan core.Event, 16)
	done := make(chan struct{})
	deb := newDebouncer(s.config.Clock, s.config.WatchDebounce)
	s.setWatcherActive(true)

	emit := func(e core.Event) {
		select {
		case events <- e:
		case <-ctx.Done():
		case <-done:
		}
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatcherActive(false)
		defer watcher.Close()

		err := s.watchLoop(ctx, watcher, deb, emit)

		close(done)
		deb.stopAndWait()
		return err
	}, lifecycle.WithErrorHandler(s.handleWatchError))

	return events, nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, deb *debouncer, emit func(core.Event)) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher events channel closed")
			}
			s.processEvent(event, deb, emit)

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher errors channel closed")
			}
			s.handleWatchError(wErr)
		}
	}
}

func (s *Store) processEvent(event fsnotify.Event, deb *debouncer, emit func(core.Event)) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	key := filepath.Base(event.Name)
	if shouldIgnore(key) {
		return
	}
	s.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	deb.add(key, func() {
		if !s.changedExternally(key) {
			return
		}
		now := s.config.Clock.Now()
		s.recordEvent(now)
		emit(core.Event{Type: core.EventStorage, Key: key, Timestamp: now.Unix()})
	})
}

func shouldIgnore(name string) bool {
	for _, pattern := range ignorePatterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// changedExternally compares the file on disk with the last value this Store
// wrote or read for key, and records the new value when they differ.
func (s *Store) changedExternally(key string) bool {
	data, err := os.ReadFile(filepath.Join(s.Path, key))
	exists := err == nil
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.handleWatchError(fmt.Errorf("failed to read %s: %w", key, err))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, known := s.known[key]
	if !exists {
		if !known {
			return false
		}
		delete(s.known, key)
		return true
	}
	if known && prev == string(data) {
		return false
	}
	s.known[key] = string(data)
	return true
}

func (s *Store) handleWatchError(err error) {
	s.config.Logger.Error("watcher error", "path", s.Path, "error", err)
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
	}
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

func (s *Store) recordEvent(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastEvent = &at
}
