// Package repository owns the in-memory document collection.
//
// The collection is a plain slice in creation order. Lookups are linear
// scans by id. Every mutation rewrites the whole collection through the
// store adapter before returning.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/aretw0/introspection"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/jonboulle/clockwork"

	"github.com/aretw0/folio/pkg/core"
	"github.com/aretw0/folio/pkg/markup"
	"github.com/aretw0/folio/pkg/store"
)

// Config holds the configuration for the repository.
type Config struct {
	Clock  clockwork.Clock // drives id generation, defaults to the real clock
	Logger *slog.Logger
}

// Repository is the sole owner of the document collection.
// Documents handed out are copies.
type Repository struct {
	store  *store.Adapter
	ids    *IDGenerator
	logger *slog.Logger

	mu   sync.RWMutex
	docs []core.Document
}

// ContentUpdate describes the outcome of UpdateContent.
type ContentUpdate struct {
	Found        bool
	TitleChanged bool
	Title        string
}

// New creates an empty repository persisting through st. Call Load to read
// the stored collection.
func New(st *store.Adapter, config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Repository{
		store:  st,
		ids:    NewIDGenerator(config.Clock),
		logger: config.Logger,
		docs:   []core.Document{},
	}
}

// Load replaces the in-memory collection with the stored one and returns
// the number of documents read.
func (r *Repository) Load(ctx context.Context) int {
	docs := r.store.LoadDocuments(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = docs
	for _, d := range docs {
		r.ids.Observe(d.ID)
	}
	r.logger.Debug("documents loaded", "count", len(docs))
	return len(docs)
}

// Create appends a new document and persists the collection.
// Empty title or content fall back to core.DefaultTitle and
// core.PlaceholderContent. The document is kept even when persisting fails.
func (r *Repository) Create(ctx context.Context, title, content string) (core.Document, error) {
	if title == "" {
		title = core.DefaultTitle
	}
	if content == "" {
		content = core.PlaceholderContent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc := core.Document{
		ID:      r.ids.Next(func(id string) bool { return r.indexLocked(id) >= 0 }),
		Title:   title,
		Content: content,
	}
	r.docs = append(r.docs, doc)
	r.logger.Debug("document created", "id", doc.ID, "title", doc.Title)

	return doc, r.persistLocked(ctx)
}

// Delete removes the document with id. It reports false, and writes
// nothing, when id is absent.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return false, nil
	}
	r.docs = append(r.docs[:i], r.docs[i+1:]...)
	r.logger.Debug("document deleted", "id", id)

	return true, r.persistLocked(ctx)
}

// UpdateTitle renames the document with id. Blank titles are rejected and
// the previous title is kept; unknown ids are ignored.
func (r *Repository) UpdateTitle(ctx context.Context, id, title string) (bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return false, nil
	}
	r.docs[i].Title = title

	return true, r.persistLocked(ctx)
}

// UpdateContent stores content for the document with id and re-derives its
// title with markup.InferTitle. Unknown ids are ignored.
func (r *Repository) UpdateContent(ctx context.Context, id, content string) (ContentUpdate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return ContentUpdate{}, nil
	}

	doc := &r.docs[i]
	doc.Content = content
	title := markup.InferTitle(doc.Title, content)
	update := ContentUpdate{Found: true, TitleChanged: title != doc.Title, Title: title}
	doc.Title = title

	return update, r.persistLocked(ctx)
}

// Find returns the document with id.
func (r *Repository) Find(id string) (core.Document, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexLocked(id)
	if i < 0 {
		return core.Document{}, false
	}
	return r.docs[i], true
}

// First returns the oldest document.
func (r *Repository) First() (core.Document, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.docs) == 0 {
		return core.Document{}, false
	}
	return r.docs[0], true
}

// Search returns the documents whose title contains query, ignoring case,
// in collection order. An empty query returns every document.
func (r *Repository) Search(query string) []core.Document {
	query = strings.ToLower(query)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]core.Document, 0, len(r.docs))
	for _, d := range r.docs {
		if strings.Contains(strings.ToLower(d.Title), query) {
			out = append(out, d)
		}
	}
	return out
}

// Match returns the documents whose title matches the glob pattern,
// ignoring case, in collection order. "/" in a title acts as a separator,
// so "**" is needed to match across it.
func (r *Repository) Match(pattern string) ([]core.Document, error) {
	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]core.Document, 0)
	for _, d := range r.docs {
		ok, err := doublestar.Match(pattern, strings.ToLower(d.Title))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// All returns a copy of the collection.
func (r *Repository) All() []core.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]core.Document, len(r.docs))
	copy(out, r.docs)
	return out
}

// Len returns the number of documents.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

func (r *Repository) indexLocked(id string) int {
	for i := range r.docs {
		if r.docs[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) persistLocked(ctx context.Context) error {
	if err := r.store.SaveDocuments(ctx, r.docs); err != nil {
		r.logger.Error("failed to persist documents", "count", len(r.docs), "error", err)
		return err
	}
	return nil
}

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Documents int    `json:"documents"`
	Codec     string `json:"codec"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	return RepositoryState{Documents: r.Len(), Codec: r.store.Codec().Name()}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
