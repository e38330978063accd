package autosave_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/folio/pkg/autosave"
)

type write struct {
	ID      string
	Content string
}

// recorder is a SaveFunc collecting every write.
type recorder struct {
	mu     sync.Mutex
	writes []write
	err    error
}

func (r *recorder) save(_ context.Context, id, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, write{id, content})
	return r.err
}

func (r *recorder) get() []write {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]write, len(r.writes))
	copy(out, r.writes)
	return out
}

func setup(t *testing.T) (*autosave.Controller, *recorder, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	rec := &recorder{}
	c := autosave.New(rec.save, autosave.Config{Clock: clock})
	return c, rec, clock
}

func TestController_DebouncesToLatestContent(t *testing.T) {
	c, rec, clock := setup(t)

	c.Notify("doc", "<p>v1</p>")
	clock.Advance(200 * time.Millisecond)
	c.Notify("doc", "<p>v2</p>")
	clock.Advance(200 * time.Millisecond)
	c.Notify("doc", "<p>v3</p>")
	assert.Equal(t, autosave.PendingWrite, c.Phase())

	clock.Advance(499 * time.Millisecond)
	assert.Never(t, func() bool { return len(rec.get()) > 0 }, 50*time.Millisecond, 5*time.Millisecond)

	clock.Advance(time.Millisecond)
	require.Eventually(t, func() bool { return len(rec.get()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []write{{"doc", "<p>v3</p>"}}, rec.get())

	// Stopped timers stay stopped.
	clock.Advance(time.Second)
	assert.Never(t, func() bool { return len(rec.get()) > 1 }, 50*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, autosave.Idle, c.Phase())
}

func TestController_Flush(t *testing.T) {
	c, rec, clock := setup(t)
	ctx := context.Background()

	flushed, err := c.Flush(ctx)
	require.NoError(t, err)
	assert.False(t, flushed, "nothing pending")

	c.Notify("doc", "<p>last words</p>")
	flushed, err = c.Flush(ctx)
	require.NoError(t, err)
	assert.True(t, flushed)
	assert.Equal(t, []write{{"doc", "<p>last words</p>"}}, rec.get())
	assert.Equal(t, autosave.Idle, c.Phase())

	// The cancelled timer must not write a second time.
	clock.Advance(time.Second)
	assert.Never(t, func() bool { return len(rec.get()) > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestController_SwitchingDocumentFlushesPrevious(t *testing.T) {
	c, rec, clock := setup(t)

	c.Notify("a", "<p>a</p>")
	c.Notify("b", "<p>b</p>")
	assert.Equal(t, []write{{"a", "<p>a</p>"}}, rec.get())

	id, content, ok := c.Pending()
	require.True(t, ok)
	assert.Equal(t, "b", id)
	assert.Equal(t, "<p>b</p>", content)

	clock.Advance(autosave.DefaultDebounce)
	require.Eventually(t, func() bool { return len(rec.get()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, write{"b", "<p>b</p>"}, rec.get()[1])
}

func TestController_StatusExpires(t *testing.T) {
	c, _, clock := setup(t)

	c.Notify("doc", "<p>x</p>")
	clock.Advance(autosave.DefaultDebounce)
	require.Eventually(t, func() bool { return c.Status() == autosave.StatusSaved }, time.Second, 5*time.Millisecond)

	clock.Advance(autosave.DefaultStatusDuration)
	assert.Eventually(t, func() bool { return c.Status() == "" }, time.Second, 5*time.Millisecond)
}

func TestController_StatusRestartsOnNewMessage(t *testing.T) {
	c, _, clock := setup(t)

	c.ShowStatus("first")
	clock.Advance(1500 * time.Millisecond)
	c.ShowStatus("second")
	clock.Advance(time.Second)
	assert.Never(t, func() bool { return c.Status() != "second" }, 50*time.Millisecond, 5*time.Millisecond)

	clock.Advance(time.Second)
	assert.Eventually(t, func() bool { return c.Status() == "" }, time.Second, 5*time.Millisecond)
}

func TestController_FailedWriteIsSurfaced(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rec := &recorder{err: errors.New("quota exceeded")}

	var mu sync.Mutex
	var reported []string
	c := autosave.New(rec.save, autosave.Config{
		Clock: clock,
		OnError: func(id string, err error) {
			mu.Lock()
			defer mu.Unlock()
			reported = append(reported, id)
		},
	})

	c.Notify("doc", "<p>big</p>")
	_, err := c.Flush(context.Background())
	assert.Error(t, err)
	assert.Error(t, c.Err())
	assert.Equal(t, autosave.StatusFailed, c.Status())

	mu.Lock()
	assert.Equal(t, []string{"doc"}, reported)
	mu.Unlock()

	state := c.State().(autosave.ControllerState)
	assert.Equal(t, "quota exceeded", state.LastError)
}

func TestController_Close(t *testing.T) {
	c, rec, clock := setup(t)

	c.Notify("doc", "<p>unsaved</p>")
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []write{{"doc", "<p>unsaved</p>"}}, rec.get())

	c.Notify("doc", "<p>too late</p>")
	assert.Equal(t, autosave.Idle, c.Phase())
	clock.Advance(time.Second)
	assert.Never(t, func() bool { return len(rec.get()) > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestController_State(t *testing.T) {
	c, _, _ := setup(t)
	c.Notify("doc", "<p>x</p>")

	state := c.State().(autosave.ControllerState)
	assert.Equal(t, "pending-write", state.Phase)
	assert.Equal(t, "doc", state.PendingID)
	assert.Equal(t, 1, state.Notifies)
	assert.True(t, state.TimerArmed)
	assert.Equal(t, "autosave", c.ComponentType())
}
