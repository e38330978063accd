package editor

import (
	"github.com/aretw0/introspection"
)

// EditorState exposes internal state for observability.
type EditorState struct {
	ActiveID      string `json:"active_id"`
	Documents     int    `json:"documents"`
	Codec         string `json:"codec"`
	Autosave      any    `json:"autosave"`
	Store         any    `json:"store,omitempty"`
	DroppedEvents int    `json:"dropped_events"`
	Closed        bool   `json:"closed"`
	InitError     string `json:"init_error,omitempty"`
}

// State implements introspection.Introspectable.
func (e *Editor) State() any {
	e.opMu.Lock()
	closed := e.closed
	e.opMu.Unlock()

	st := EditorState{
		ActiveID:      e.session.ActiveID(),
		Documents:     e.repo.Len(),
		Codec:         e.store.Codec().Name(),
		Autosave:      e.autosave.State(),
		DroppedEvents: e.events.droppedCount(),
		Closed:        closed,
	}
	if in, ok := e.kv.(introspection.Introspectable); ok {
		st.Store = in.State()
	}
	if e.initErr != nil {
		st.InitError = e.initErr.Error()
	}
	return st
}

// ComponentType implements introspection.Component.
func (e *Editor) ComponentType() string {
	return "editor"
}

var _ introspection.Introspectable = (*Editor)(nil)
var _ introspection.Component = (*Editor)(nil)
