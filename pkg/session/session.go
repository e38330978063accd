// Package session tracks which document is bound to the editing surface.
//
// The session refers to the active document by id only; the repository
// remains the owner of every document.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/folio/pkg/core"
	"github.com/aretw0/folio/pkg/repository"
	"github.com/aretw0/folio/pkg/store"
)

// Config holds the configuration for the session.
type Config struct {
	Logger *slog.Logger
}

// Session holds the active document id.
type Session struct {
	repo   *repository.Repository
	store  *store.Adapter
	logger *slog.Logger

	mu       sync.RWMutex
	activeID string
}

// New creates a session with no active document.
func New(repo *repository.Repository, st *store.Adapter, config Config) *Session {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Session{repo: repo, store: st, logger: config.Logger}
}

// Init loads the stored collection and picks the document to open:
//
//   - an empty collection is seeded with the welcome document;
//   - a stored active id that no longer resolves falls back to the first document;
//   - otherwise the stored active id is kept.
//
// A storage failure is returned, but the session is still left with an
// active document so the editor can start.
func (s *Session) Init(ctx context.Context) (string, error) {
	s.repo.Load(ctx)
	stored := s.store.LoadActiveID(ctx)

	var createErr error
	id := stored
	if s.repo.Len() == 0 {
		doc, err := s.repo.Create(ctx, core.WelcomeTitle, core.WelcomeContent)
		createErr = err
		id = doc.ID
		s.logger.Info("seeded welcome document", "id", id)
	} else if _, ok := s.repo.Find(stored); !ok {
		first, _ := s.repo.First()
		id = first.ID
		if stored != "" {
			s.logger.Warn("stored active document is gone, opening first", "stored", stored, "id", id)
		}
	}

	_, err := s.Activate(ctx, id)
	return id, errors.Join(createErr, err)
}

// Activate makes id the active document and persists the choice.
// It reports false and changes nothing when id does not resolve.
func (s *Session) Activate(ctx context.Context, id string) (bool, error) {
	if _, ok := s.repo.Find(id); !ok {
		return false, nil
	}

	s.mu.Lock()
	s.activeID = id
	s.mu.Unlock()

	if err := s.store.SaveActiveID(ctx, id); err != nil {
		s.logger.Error("failed to persist active document", "id", id, "error", err)
		return true, err
	}
	s.logger.Debug("document activated", "id", id)
	return true, nil
}

// OnDelete picks the successor after deletedID was removed from the
// repository. When the deleted document was not active the current active
// id is returned unchanged. Otherwise the first remaining document is
// activated, or, if none is left, a new default document is created and
// activated, so the user always has a document to edit.
func (s *Session) OnDelete(ctx context.Context, deletedID string) (string, error) {
	s.mu.Lock()
	if deletedID == "" || s.activeID != deletedID {
		id := s.activeID
		s.mu.Unlock()
		return id, nil
	}
	s.activeID = ""
	s.mu.Unlock()

	next, ok := s.repo.First()
	var createErr error
	if !ok {
		next, createErr = s.repo.Create(ctx, "", "")
		s.logger.Debug("collection emptied, created replacement", "id", next.ID)
	}

	_, err := s.Activate(ctx, next.ID)
	return next.ID, errors.Join(createErr, err)
}

// ActiveID returns the active document id, or "" when none is active.
func (s *Session) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// Active returns the active document.
func (s *Session) Active() (core.Document, bool) {
	id := s.ActiveID()
	if id == "" {
		return core.Document{}, false
	}
	return s.repo.Find(id)
}

// SessionState exposes internal state for observability.
type SessionState struct {
	ActiveID string `json:"active_id"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	return SessionState{ActiveID: s.ActiveID()}
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)
