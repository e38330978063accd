package core

import "context"

// Keys used in the key-value backend.
const (
	KeyDocuments = "simpleDocs"
	KeyActiveID  = "simpleDocsActiveId"
)

// KeyValue is the contract of the persistent key-value backend
// (the role browser local storage plays for the web editor).
// Adhering to this interface keeps the store independent of the medium
// (memory, files, anything else that can hold a string under a key).
type KeyValue interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Watchable is implemented by backends that can observe writes made by
// other processes sharing the same storage.
type Watchable interface {
	// Watch emits an EventStorage for every external change until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
