package autosave

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// slot is a named one-shot timer. Scheduling into a slot cancels whatever
// was scheduled there before; a callback that was already on its way when it
// got cancelled is dropped.
type slot struct {
	name  string
	clock clockwork.Clock

	mu    sync.Mutex
	timer clockwork.Timer
	gen   uint64
}

func newSlot(name string, clock clockwork.Clock) *slot {
	return &slot{name: name, clock: clock}
}

// reset cancels the pending callback, if any, and schedules fn after d.
func (s *slot) reset(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.timer = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		if gen != s.gen {
			s.mu.Unlock()
			return
		}
		s.timer = nil
		s.mu.Unlock()
		fn()
	})
}

// stop cancels the pending callback. It reports whether one was pending.
func (s *slot) stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.timer == nil {
		return false
	}
	s.timer.Stop()
	s.timer = nil
	return true
}

func (s *slot) pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
