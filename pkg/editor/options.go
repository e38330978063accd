package editor

import (
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/aretw0/folio/pkg/store"
)

// DefaultEventBuffer is the capacity of the event channel.
const DefaultEventBuffer = 64

// Surface is the rendering surface the editor pushes content into.
type Surface interface {
	SetContent(html string)
}

type options struct {
	logger         *slog.Logger
	clock          clockwork.Clock
	codec          store.Codec
	surface        Surface
	debounce       time.Duration
	statusDuration time.Duration
	eventBuffer    int
}

// Option configures an Editor.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:      slog.Default(),
		clock:       clockwork.NewRealClock(),
		codec:       store.JSONCodec{},
		eventBuffer: DefaultEventBuffer,
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock replaces the clock driving ids and timers. Tests pass a fake one.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithCodec sets the encoding of the stored collection. Defaults to JSON.
func WithCodec(codec store.Codec) Option {
	return func(o *options) {
		if codec != nil {
			o.codec = codec
		}
	}
}

// WithSurface binds a rendering surface.
func WithSurface(s Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithDebounce sets the autosave quiet interval.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithStatusDuration sets how long status messages stay visible.
func WithStatusDuration(d time.Duration) Option {
	return func(o *options) {
		o.statusDuration = d
	}
}

// WithEventBuffer sets the capacity of the event channel.
// Zero means DefaultEventBuffer.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.eventBuffer = size
		}
	}
}
