// Package memory provides an in-process core.KeyValue backend.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/folio/pkg/core"
)

// Option configures a Store.
type Option func(*Store)

// WithQuota limits the total size (keys plus values, in bytes) the store may hold.
// Zero means unlimited.
func WithQuota(bytes int) Option {
	return func(s *Store) {
		s.quota = bytes
	}
}

// Store is a map-backed core.KeyValue, safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	data   map[string]string
	quota  int
	size   int
	writes map[string]int
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		data:   make(map[string]string),
		writes: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.size - s.entrySize(key) + len(key) + len(value)
	if s.quota > 0 && size > s.quota {
		return core.ErrQuotaExceeded
	}
	s.data[key] = value
	s.size = size
	s.writes[key]++
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.size -= s.entrySize(key)
	delete(s.data, key)
	return nil
}

// Writes returns how many times key has been written.
func (s *Store) Writes(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes[key]
}

func (s *Store) entrySize(key string) int {
	v, ok := s.data[key]
	if !ok {
		return 0
	}
	return len(key) + len(v)
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Keys  int `json:"keys"`
	Bytes int `json:"bytes"`
	Quota int `json:"quota,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreState{Keys: len(s.data), Bytes: s.size, Quota: s.quota}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory-store"
}

var _ core.KeyValue = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
