package folio

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/aretw0/folio/internal/platform"
	"github.com/aretw0/folio/pkg/core"
	"github.com/aretw0/folio/pkg/editor"
)

// --- Types ---

// Document is a public alias for the stored document.
type Document = core.Document

// Editor is a public alias for the editor.
type Editor = editor.Editor

// Surface is a public alias for the rendering surface.
type Surface = editor.Surface

// --- Configuration ---

// Option defines a functional option for configuring a workspace.
type Option = platform.Option

// WithAdapter selects the backend by name: "fs" (default) or "memory".
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithKeyValue injects a custom backend.
func WithKeyValue(kv core.KeyValue) Option {
	return platform.WithKeyValue(kv)
}

// WithCodec selects the encoding of the stored collection: "json" or "yaml".
func WithCodec(name string) Option {
	return platform.WithCodec(name)
}

// WithStoreDir sets the store directory name (default ".folio").
func WithStoreDir(name string) Option {
	return platform.WithStoreDir(name)
}

// WithMustExist ensures the store directory already exists.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithReadOnly opens the workspace without ever writing to it.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithDevSafety controls the `go run` sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithQuota caps the memory backend at the given number of bytes.
func WithQuota(bytes int) Option {
	return platform.WithQuota(bytes)
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock replaces the clock driving ids and timers.
func WithClock(clock clockwork.Clock) Option {
	return platform.WithClock(clock)
}

// WithDebounce sets the autosave quiet interval.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithStatusDuration sets how long status messages stay visible.
func WithStatusDuration(d time.Duration) Option {
	return platform.WithStatusDuration(d)
}

// WithEventBuffer sets the size of the event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithSurface binds a rendering surface.
func WithSurface(s Surface) Option {
	return platform.WithSurface(s)
}

// WithWatcherErrorHandler receives runtime failures of the fs watcher.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// Open opens the workspace at path and returns a ready editor.
func Open(ctx context.Context, path string, opts ...Option) (*Editor, error) {
	return platform.New(ctx, path, opts...)
}

// Init creates the store directory of a workspace and returns its path.
func Init(ctx context.Context, path string, opts ...Option) (string, error) {
	return platform.Init(ctx, path, opts...)
}

// --- Safety & Utils ---

// ResolveWorkspace determines the directory actually used for path.
func ResolveWorkspace(path string, sandbox bool) string {
	return platform.ResolveWorkspace(path, sandbox)
}

// IsDevRun reports whether the process runs via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindRoot walks up from startDir to the nearest workspace.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir, "")
}
