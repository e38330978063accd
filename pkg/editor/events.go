package editor

import (
	"sync"

	"github.com/aretw0/folio/pkg/core"
)

// broker fans editor events into one buffered channel. Publishing never
// blocks: when the buffer is full the event is dropped.
type broker struct {
	mu      sync.Mutex
	ch      chan core.Event
	closed  bool
	dropped int
}

func newBroker(size int) *broker {
	return &broker{ch: make(chan core.Event, size)}
}

// publish reports false when the event was dropped.
func (b *broker) publish(e core.Event) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}
	select {
	case b.ch <- e:
		return true
	default:
		b.dropped++
		return false
	}
}

func (b *broker) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.ch)
	}
}

func (b *broker) droppedCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}
