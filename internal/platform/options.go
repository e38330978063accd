package platform

import (
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/aretw0/folio/pkg/core"
	"github.com/aretw0/folio/pkg/editor"
)

// options holds the internal configuration for a folio workspace.
type options struct {
	kv      core.KeyValue
	logger  *slog.Logger
	clock   clockwork.Clock
	surface editor.Surface
	adapter string
	codec   string
	config  map[string]any
}

// Option defines a functional option for configuring folio.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		adapter: "fs",
		codec:   "json",
		config:  make(map[string]any),
	}
}

func newOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithAdapter selects the key-value backend by name: "fs" (default) or "memory".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithKeyValue injects a backend, bypassing adapter selection entirely.
func WithKeyValue(kv core.KeyValue) Option {
	return func(o *options) {
		o.kv = kv
	}
}

// WithCodec selects how the collection is encoded: "json" (default) or "yaml".
func WithCodec(name string) Option {
	return func(o *options) {
		o.codec = name
	}
}

// WithStoreDir sets the name of the store directory inside the workspace.
// Defaults to ".folio".
func WithStoreDir(name string) Option {
	return func(o *options) {
		o.config["store_dir"] = name
	}
}

// WithMustExist fails instead of creating a missing store directory.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithForceTemp forces the use of a temporary directory.
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithReadOnly enables read-only mode.
// Writes fail with core.ErrReadOnly, the store directory is never created,
// and the dev sandbox is bypassed since nothing can be damaged.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or
// `go test`. By default (true) the workspace is redirected to a temporary
// directory so development runs never touch real notes.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}

// WithQuota caps the memory adapter at the given number of bytes.
func WithQuota(bytes int) Option {
	return func(o *options) {
		o.config["quota"] = bytes
	}
}

// WithWatcherErrorHandler receives runtime failures of the fs watcher,
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock replaces the clock driving ids and timers.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithDebounce sets the autosave quiet interval.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.config["debounce"] = d
	}
}

// WithStatusDuration sets how long status messages stay visible.
func WithStatusDuration(d time.Duration) Option {
	return func(o *options) {
		o.config["status_duration"] = d
	}
}

// WithEventBuffer sets the size of the editor event buffer.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithSurface binds a rendering surface to the editor.
func WithSurface(s editor.Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}
