// Package store reads and writes the document collection and the active
// document id through a core.KeyValue backend.
//
// Every write is a full overwrite of its key: there are no deltas and no
// transactions. Reads favor availability: a missing or unreadable collection
// loads as empty so the editor can always start.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/folio/pkg/core"
)

// Config holds the configuration for the store adapter.
type Config struct {
	Codec  Codec        // defaults to JSONCodec
	Logger *slog.Logger // defaults to slog.Default()
}

// Adapter is the persistent store of the editor.
type Adapter struct {
	kv     core.KeyValue
	codec  Codec
	logger *slog.Logger
}

// New creates an Adapter over kv.
func New(kv core.KeyValue, config Config) *Adapter {
	if config.Codec == nil {
		config.Codec = JSONCodec{}
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Adapter{kv: kv, codec: config.Codec, logger: config.Logger}
}

// Codec returns the codec used for the collection.
func (a *Adapter) Codec() Codec {
	return a.codec
}

// LoadDocuments returns the stored collection in insertion order.
// It returns an empty collection when nothing is stored, when the backend
// cannot be read, or when the stored value does not decode.
func (a *Adapter) LoadDocuments(ctx context.Context) []core.Document {
	raw, ok, err := a.kv.Get(ctx, core.KeyDocuments)
	if err != nil {
		a.logger.Warn("failed to read documents, starting empty", "key", core.KeyDocuments, "error", err)
		return []core.Document{}
	}
	if !ok || raw == "" {
		return []core.Document{}
	}

	docs, err := a.codec.Decode([]byte(raw))
	if err != nil {
		a.logger.Warn("stored documents are unreadable, starting empty", "codec", a.codec.Name(), "error", err)
		return []core.Document{}
	}
	if docs == nil {
		docs = []core.Document{}
	}
	return docs
}

// SaveDocuments overwrites the stored collection with docs.
func (a *Adapter) SaveDocuments(ctx context.Context, docs []core.Document) error {
	data, err := a.codec.Encode(docs)
	if err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}
	if err := a.kv.Set(ctx, core.KeyDocuments, string(data)); err != nil {
		return fmt.Errorf("%w: documents: %w", core.ErrStorage, err)
	}
	a.logger.Debug("documents saved", "count", len(docs), "bytes", len(data))
	return nil
}

// LoadActiveID returns the stored active document id, or "" when none is stored.
func (a *Adapter) LoadActiveID(ctx context.Context) string {
	id, ok, err := a.kv.Get(ctx, core.KeyActiveID)
	if err != nil {
		a.logger.Warn("failed to read active document id", "key", core.KeyActiveID, "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return id
}

// SaveActiveID overwrites the stored active document id.
// An empty id clears it.
func (a *Adapter) SaveActiveID(ctx context.Context, id string) error {
	var err error
	if id == "" {
		err = a.kv.Remove(ctx, core.KeyActiveID)
	} else {
		err = a.kv.Set(ctx, core.KeyActiveID, id)
	}
	if err != nil {
		return fmt.Errorf("%w: active id: %w", core.ErrStorage, err)
	}
	return nil
}
