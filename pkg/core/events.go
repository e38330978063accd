package core

import "fmt"

// EventType represents the kind of change observed in the editor.
type EventType string

const (
	EventCreate   EventType = "CREATE"
	EventModify   EventType = "MODIFY"
	EventRename   EventType = "RENAME"
	EventDelete   EventType = "DELETE"
	EventActivate EventType = "ACTIVATE"
	EventSaved    EventType = "SAVED"

	// EventStorage reports a change written to the backend by someone else.
	EventStorage EventType = "STORAGE"
)

// Event represents a change in the editor or its backend.
type Event struct {
	Type      EventType
	ID        string // document id, empty for storage events
	Key       string // storage key, set for storage events only
	Timestamp int64  // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	if e.Type == EventStorage {
		return fmt.Sprintf("%s %s", e.Type, e.Key)
	}
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
