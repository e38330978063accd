// Package editor is the application state of a note editor.
//
// An Editor owns the store adapter, the document repository, the active
// document session and the autosave controller. Callers drive it the way a
// rendering surface would: Edit on every content change, Blur on focus loss,
// Open to switch documents. Content to display is pushed back through the
// optional Surface.
//
// Mutations are serialized. Pending edits are flushed before any operation
// that changes which document is active, so an edit always lands in the
// document it was made in.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/lifecycle"
	"github.com/jonboulle/clockwork"

	"github.com/aretw0/folio/pkg/autosave"
	"github.com/aretw0/folio/pkg/core"
	"github.com/aretw0/folio/pkg/export"
	"github.com/aretw0/folio/pkg/markup"
	"github.com/aretw0/folio/pkg/repository"
	"github.com/aretw0/folio/pkg/session"
	"github.com/aretw0/folio/pkg/store"
)

// StatusTitleSaved is shown after a successful rename.
const StatusTitleSaved = "Title saved!"

// Editor is the entry point for every editing operation.
type Editor struct {
	kv       core.KeyValue
	store    *store.Adapter
	repo     *repository.Repository
	session  *session.Session
	autosave *autosave.Controller

	surface Surface
	logger  *slog.Logger
	clock   clockwork.Clock
	events  *broker

	// opMu serializes mutations. It is never held while flushing autosave,
	// since the flush itself commits through opMu.
	opMu    sync.Mutex
	closed  bool
	initErr error
}

// New creates an editor over kv, loads the stored collection and activates
// the document to show first. A storage failure during start-up is logged;
// the editor still starts with an active document.
func New(ctx context.Context, kv core.KeyValue, opts ...Option) (*Editor, error) {
	if kv == nil {
		return nil, errors.New("editor: key-value store is required")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	st := store.New(kv, store.Config{Codec: o.codec, Logger: o.logger})
	repo := repository.New(st, repository.Config{Clock: o.clock, Logger: o.logger})

	e := &Editor{
		kv:      kv,
		store:   st,
		repo:    repo,
		session: session.New(repo, st, session.Config{Logger: o.logger}),
		surface: o.surface,
		logger:  o.logger,
		clock:   o.clock,
		events:  newBroker(o.eventBuffer),
	}
	e.autosave = autosave.New(e.commit, autosave.Config{
		Clock:          o.clock,
		Debounce:       o.debounce,
		StatusDuration: o.statusDuration,
		Logger:         o.logger,
	})

	id, err := e.session.Init(ctx)
	if err != nil {
		e.initErr = err
		e.logger.Error("editor started with unsaved state", "error", err)
	}
	doc, _ := e.repo.Find(id)
	e.emit(core.EventActivate, id)
	e.render(doc.Content)

	e.logger.Debug("editor ready", "documents", e.repo.Len(), "active", id, "codec", st.Codec().Name())
	return e, nil
}

// Close flushes pending edits and stops the timers. Events() is closed.
func (e *Editor) Close(ctx context.Context) error {
	err := e.autosave.Close(ctx)

	e.opMu.Lock()
	e.closed = true
	e.opMu.Unlock()

	e.events.close()
	return err
}

// Edit records content as the latest state of document id. It is written
// once the user stops typing, or earlier by Flush.
func (e *Editor) Edit(id, content string) {
	e.autosave.Notify(id, content)
}

// Flush writes pending edits immediately.
func (e *Editor) Flush(ctx context.Context) error {
	_, err := e.autosave.Flush(ctx)
	return err
}

// Blur flushes pending edits. It reports whether the active document is
// empty, in which case the surface is reset to the placeholder.
func (e *Editor) Blur(ctx context.Context) (bool, error) {
	err := e.Flush(ctx)

	doc, ok := e.session.Active()
	if !ok || !markup.IsTrivial(doc.Content) {
		return false, err
	}
	e.render(core.PlaceholderContent)
	return true, err
}

// NewDocument creates a default document and makes it active.
func (e *Editor) NewDocument(ctx context.Context) (core.Document, error) {
	flushErr := e.Flush(ctx)

	doc, err := func() (core.Document, error) {
		e.opMu.Lock()
		defer e.opMu.Unlock()
		if e.closed {
			return core.Document{}, core.ErrClosed
		}

		doc, createErr := e.repo.Create(ctx, "", "")
		e.emit(core.EventCreate, doc.ID)
		_, activateErr := e.session.Activate(ctx, doc.ID)
		e.emit(core.EventActivate, doc.ID)
		return doc, errors.Join(createErr, activateErr)
	}()
	if errors.Is(err, core.ErrClosed) {
		return doc, err
	}

	e.render(doc.Content)
	return doc, errors.Join(flushErr, err)
}

// Open makes id the active document and returns it. It reports false and
// changes nothing when id does not resolve.
func (e *Editor) Open(ctx context.Context, id string) (core.Document, bool, error) {
	flushErr := e.Flush(ctx)

	e.opMu.Lock()
	if e.closed {
		e.opMu.Unlock()
		return core.Document{}, false, core.ErrClosed
	}
	ok, err := e.session.Activate(ctx, id)
	doc, _ := e.repo.Find(id)
	e.opMu.Unlock()

	if !ok {
		return core.Document{}, false, flushErr
	}
	e.emit(core.EventActivate, id)
	e.render(doc.Content)
	return doc, true, errors.Join(flushErr, err)
}

// Rename sets the title of document id. Blank titles are ignored.
func (e *Editor) Rename(ctx context.Context, id, title string) (bool, error) {
	flushErr := e.Flush(ctx)

	e.opMu.Lock()
	if e.closed {
		e.opMu.Unlock()
		return false, core.ErrClosed
	}
	ok, err := e.repo.UpdateTitle(ctx, id, title)
	e.opMu.Unlock()

	if !ok {
		return false, flushErr
	}
	e.emit(core.EventRename, id)
	if err == nil {
		e.autosave.ShowStatus(StatusTitleSaved)
	}
	return true, errors.Join(flushErr, err)
}

// Delete removes document id and returns the id of the active document
// afterwards. When the active document was deleted its successor is loaded
// into the surface.
func (e *Editor) Delete(ctx context.Context, id string) (string, bool, error) {
	flushErr := e.Flush(ctx)

	e.opMu.Lock()
	if e.closed {
		e.opMu.Unlock()
		return "", false, core.ErrClosed
	}
	prev := e.session.ActiveID()
	ok, deleteErr := e.repo.Delete(ctx, id)
	if !ok {
		e.opMu.Unlock()
		return prev, false, flushErr
	}
	e.emit(core.EventDelete, id)

	created := e.repo.Len() == 0
	next, nextErr := e.session.OnDelete(ctx, id)
	doc, _ := e.repo.Find(next)
	e.opMu.Unlock()

	if next != prev {
		if created {
			e.emit(core.EventCreate, next)
		}
		e.emit(core.EventActivate, next)
		e.render(doc.Content)
	}
	return next, true, errors.Join(flushErr, deleteErr, nextErr)
}

// Reload re-reads the stored collection and active id, for instance after
// another process changed the store. Pending edits are flushed first.
func (e *Editor) Reload(ctx context.Context) error {
	flushErr := e.Flush(ctx)

	e.opMu.Lock()
	if e.closed {
		e.opMu.Unlock()
		return core.ErrClosed
	}
	prev := e.session.ActiveID()
	id, err := e.session.Init(ctx)
	doc, _ := e.repo.Find(id)
	e.opMu.Unlock()

	e.logger.Debug("editor reloaded", "documents", e.repo.Len(), "active", id)
	if id != prev {
		e.emit(core.EventActivate, id)
	}
	e.render(doc.Content)
	return errors.Join(flushErr, err)
}

// Watch reloads the editor whenever the store reports an external change,
// until ctx is done. Storage events are forwarded to Events().
func (e *Editor) Watch(ctx context.Context) error {
	w, ok := e.kv.(core.Watchable)
	if !ok {
		return core.ErrNotWatchable
	}
	changes, err := w.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch store: %w", err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		for change := range changes {
			e.logger.Info("store changed externally", "key", change.Key)
			if err := e.Reload(ctx); err != nil {
				if errors.Is(err, core.ErrClosed) {
					return nil
				}
				e.logger.Error("reload failed", "error", err)
			}
			e.publish(change)
		}
		return nil
	})
	return nil
}

// Export renders document id as a standalone HTML page.
func (e *Editor) Export(ctx context.Context, id string) (export.File, bool, error) {
	if err := e.Flush(ctx); err != nil {
		e.logger.Warn("exporting last saved state", "id", id, "error", err)
	}
	doc, ok := e.repo.Find(id)
	if !ok {
		return export.File{}, false, nil
	}
	f, err := export.Document(doc)
	if err != nil {
		return export.File{}, true, err
	}
	return f, true, nil
}

// Find returns document id.
func (e *Editor) Find(id string) (core.Document, bool) {
	return e.repo.Find(id)
}

// Documents returns every document in creation order.
func (e *Editor) Documents() []core.Document {
	return e.repo.All()
}

// Search returns documents whose title contains query, ignoring case.
func (e *Editor) Search(query string) []core.Document {
	return e.repo.Search(query)
}

// Match returns documents whose title matches a glob pattern.
func (e *Editor) Match(pattern string) ([]core.Document, error) {
	return e.repo.Match(pattern)
}

// Active returns the active document.
func (e *Editor) Active() (core.Document, bool) {
	return e.session.Active()
}

// ActiveID returns the id of the active document.
func (e *Editor) ActiveID() string {
	return e.session.ActiveID()
}

// Status returns the transient status message, "" when none is shown.
func (e *Editor) Status() string {
	return e.autosave.Status()
}

// Events returns the stream of editor events. Events are dropped rather
// than blocking a mutation when the consumer falls behind.
func (e *Editor) Events() <-chan core.Event {
	return e.events.ch
}

// commit is the autosave write path.
func (e *Editor) commit(ctx context.Context, id, content string) error {
	e.opMu.Lock()
	if e.closed {
		e.opMu.Unlock()
		return core.ErrClosed
	}
	update, err := e.repo.UpdateContent(ctx, id, content)
	e.opMu.Unlock()

	if !update.Found {
		e.logger.Debug("dropped edit of missing document", "id", id)
		return nil
	}
	e.emit(core.EventModify, id)
	if update.TitleChanged {
		e.emit(core.EventRename, id)
	}
	if err == nil {
		e.emit(core.EventSaved, id)
	}
	return err
}

func (e *Editor) render(content string) {
	if e.surface != nil {
		e.surface.SetContent(content)
	}
}

func (e *Editor) emit(t core.EventType, id string) {
	e.publish(core.Event{Type: t, ID: id, Timestamp: e.clock.Now().Unix()})
}

func (e *Editor) publish(ev core.Event) {
	if !e.events.publish(ev) {
		e.logger.Debug("event dropped", "event", ev.String())
	}
}
