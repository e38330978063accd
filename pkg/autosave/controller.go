// Package autosave writes editor content back to the repository once the
// user stops typing.
//
// The controller is a two-phase machine over one timer slot:
//
//	Idle --Notify--> PendingWrite --quiet interval--> (save) --> Idle
//	                 PendingWrite --Notify--> PendingWrite (timer restarted)
//	                 PendingWrite --Flush---> (save) --> Idle
//
// Only the latest content is ever written. A second, independent slot
// expires the transient status message shown after each save.
package autosave

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/introspection"
	"github.com/jonboulle/clockwork"
)

const (
	DefaultDebounce       = 500 * time.Millisecond
	DefaultStatusDuration = 2 * time.Second

	StatusSaved  = "Saved!"
	StatusFailed = "Not saved!"
)

// Phase is the state of the save slot.
type Phase int

const (
	Idle Phase = iota
	PendingWrite
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case PendingWrite:
		return "pending-write"
	default:
		return "unknown"
	}
}

// SaveFunc writes content into the document with id.
type SaveFunc func(ctx context.Context, id, content string) error

// Config holds the configuration for the controller.
type Config struct {
	Clock          clockwork.Clock
	Debounce       time.Duration // quiet interval before a write, default 500ms
	StatusDuration time.Duration // how long a status message stays, default 2s
	Logger         *slog.Logger

	// OnError receives failed writes. They are also logged and reflected
	// in the status message.
	OnError func(id string, err error)
}

// Controller debounces content-change notifications into writes.
type Controller struct {
	save   SaveFunc
	config Config

	saveSlot   *slot
	statusSlot *slot

	// writeMu orders writes: a timer-fired write and a flush never overlap,
	// so an older content can not land after a newer one.
	writeMu sync.Mutex

	mu        sync.Mutex
	phase     Phase
	pendingID string
	content   string
	closed    bool
	status    string
	statusSeq uint64
	notifies  int
	writes    int
	lastErr   error
}

// New creates an idle controller writing through save.
func New(save SaveFunc, config Config) *Controller {
	if config.Clock == nil {
		config.Clock = clockwork.NewRealClock()
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	if config.StatusDuration <= 0 {
		config.StatusDuration = DefaultStatusDuration
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Controller{
		save:       save,
		config:     config,
		saveSlot:   newSlot("save", config.Clock),
		statusSlot: newSlot("status", config.Clock),
	}
}

// Notify records content as the latest state of document id and restarts
// the quiet interval. Pending content of another document is flushed first.
// Notifications after Close are ignored.
func (c *Controller) Notify(id, content string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	otherDoc := c.phase == PendingWrite && c.pendingID != id
	c.mu.Unlock()

	if otherDoc {
		_, _ = c.Flush(context.Background())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.pendingID = id
	c.content = content
	c.phase = PendingWrite
	c.notifies++
	c.saveSlot.reset(c.config.Debounce, c.fire)
}

// Flush writes pending content immediately, bypassing the quiet interval.
// It reports whether anything was pending.
func (c *Controller) Flush(ctx context.Context) (bool, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	if c.phase != PendingWrite {
		c.mu.Unlock()
		return false, nil
	}
	c.saveSlot.stop()
	id, content := c.takeLocked()
	c.mu.Unlock()

	return true, c.write(ctx, id, content)
}

// Close flushes pending content and stops both slots.
func (c *Controller) Close(ctx context.Context) error {
	_, err := c.Flush(ctx)

	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.saveSlot.stop()
	c.statusSlot.stop()
	return err
}

// ShowStatus displays msg until the status duration elapses or another
// message replaces it.
func (c *Controller) ShowStatus(msg string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.status = msg
	c.statusSeq++
	seq := c.statusSeq
	c.statusSlot.reset(c.config.StatusDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.statusSeq == seq {
			c.status = ""
		}
	})
	c.mu.Unlock()
}

// Status returns the current status message, "" once it expired.
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Phase returns the current phase of the save slot.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Pending returns the document id and content waiting to be written.
func (c *Controller) Pending() (id, content string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PendingWrite {
		return "", "", false
	}
	return c.pendingID, c.content, true
}

// Err returns the error of the most recent write.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller) fire() {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	if c.phase != PendingWrite {
		c.mu.Unlock()
		return
	}
	id, content := c.takeLocked()
	c.mu.Unlock()

	_ = c.write(context.Background(), id, content)
}

func (c *Controller) takeLocked() (string, string) {
	id, content := c.pendingID, c.content
	c.pendingID, c.content = "", ""
	c.phase = Idle
	return id, content
}

func (c *Controller) write(ctx context.Context, id, content string) error {
	err := c.save(ctx, id, content)

	c.mu.Lock()
	c.writes++
	c.lastErr = err
	c.mu.Unlock()

	if err != nil {
		c.config.Logger.Error("autosave failed", "id", id, "error", err)
		if c.config.OnError != nil {
			c.config.OnError(id, err)
		}
		c.ShowStatus(StatusFailed)
		return err
	}
	c.config.Logger.Debug("autosaved", "id", id, "bytes", len(content))
	c.ShowStatus(StatusSaved)
	return nil
}

// ControllerState exposes internal state for observability.
type ControllerState struct {
	Phase      string `json:"phase"`
	PendingID  string `json:"pending_id,omitempty"`
	Notifies   int    `json:"notifies"`
	Writes     int    `json:"writes"`
	Status     string `json:"status,omitempty"`
	TimerArmed bool   `json:"timer_armed"`
	LastError  string `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (c *Controller) State() any {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := ControllerState{
		Phase:      c.phase.String(),
		PendingID:  c.pendingID,
		Notifies:   c.notifies,
		Writes:     c.writes,
		Status:     c.status,
		TimerArmed: c.saveSlot.pending(),
	}
	if c.lastErr != nil {
		st.LastError = c.lastErr.Error()
	}
	return st
}

// ComponentType implements introspection.Component.
func (c *Controller) ComponentType() string {
	return "autosave"
}

var _ introspection.Introspectable = (*Controller)(nil)
var _ introspection.Component = (*Controller)(nil)
