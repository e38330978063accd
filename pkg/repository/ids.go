package repository

import (
	"strconv"
	"sync"

	"github.com/jonboulle/clockwork"
)

// IDGenerator hands out document ids derived from the creation time in
// milliseconds. Ids are strictly increasing for the lifetime of the
// generator: two creations within the same millisecond get consecutive values.
type IDGenerator struct {
	clock clockwork.Clock

	mu   sync.Mutex
	last int64
}

// NewIDGenerator creates a generator reading time from clock.
func NewIDGenerator(clock clockwork.Clock) *IDGenerator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &IDGenerator{clock: clock}
}

// Observe raises the floor above an existing id so that documents loaded
// from storage, possibly created by a clock running ahead, are never reissued.
// Non-numeric ids are ignored.
func (g *IDGenerator) Observe(id string) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if n > g.last {
		g.last = n
	}
}

// Next returns a fresh id. taken, when non-nil, is consulted so an id already
// present in the collection is skipped.
func (g *IDGenerator) Next(taken func(id string) bool) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.clock.Now().UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	id := strconv.FormatInt(n, 10)
	for taken != nil && taken(id) {
		n++
		id = strconv.FormatInt(n, 10)
	}
	g.last = n
	return id
}
