package fs

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// debouncer collapses repeated calls for the same key into the last one
// issued within the window.
type debouncer struct {
	clock  clockwork.Clock
	window time.Duration

	mu      sync.Mutex
	pending map[string]*pendingCall
	stopped bool
	wg      sync.WaitGroup
}

type pendingCall struct {
	timer clockwork.Timer
}

func newDebouncer(clock clockwork.Clock, window time.Duration) *debouncer {
	return &debouncer{
		clock:   clock,
		window:  window,
		pending: make(map[string]*pendingCall),
	}
}

// add schedules fn for key, replacing any call still waiting for that key.
func (d *debouncer) add(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if prev, ok := d.pending[key]; ok && prev.timer.Stop() {
		d.wg.Done()
	}

	call := &pendingCall{}
	d.wg.Add(1)
	call.timer = d.clock.AfterFunc(d.window, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.pending[key] == call {
			delete(d.pending, key)
		}
		d.mu.Unlock()
		fn()
	})
	d.pending[key] = call
}

// stopAndWait drops every waiting call and blocks until in-flight calls return.
func (d *debouncer) stopAndWait() {
	d.mu.Lock()
	d.stopped = true
	for key, call := range d.pending {
		if call.timer.Stop() {
			d.wg.Done()
		}
		delete(d.pending, key)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
