package platform

import (
	"context"
	"time"

	"github.com/aretw0/folio/pkg/editor"
	"github.com/aretw0/folio/pkg/store"
)

// New opens the workspace at uri and returns a ready editor.
//
//	ed, err := folio.Open(ctx, "./notes", folio.WithCodec("yaml"))
func New(ctx context.Context, uri string, opts ...Option) (*editor.Editor, error) {
	o := newOptions(opts...)

	codec, err := store.CodecFor(o.codec)
	if err != nil {
		return nil, err
	}

	kv, err := OpenStore(ctx, uri, opts...)
	if err != nil {
		return nil, err
	}

	edOpts := []editor.Option{
		editor.WithCodec(codec),
		editor.WithLogger(o.logger),
		editor.WithClock(o.clock),
		editor.WithSurface(o.surface),
	}
	if d, ok := o.config["debounce"].(time.Duration); ok {
		edOpts = append(edOpts, editor.WithDebounce(d))
	}
	if d, ok := o.config["status_duration"].(time.Duration); ok {
		edOpts = append(edOpts, editor.WithStatusDuration(d))
	}
	if n, ok := o.config["event_buffer"].(int); ok {
		edOpts = append(edOpts, editor.WithEventBuffer(n))
	}

	return editor.New(ctx, kv, edOpts...)
}
