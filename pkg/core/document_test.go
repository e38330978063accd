package core_test

import (
	"testing"

	"github.com/aretw0/folio/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, "Groceries", core.DisplayTitle(core.Document{Title: "Groceries"}))
	assert.Equal(t, core.UntitledTitle, core.DisplayTitle(core.Document{}))
	assert.Equal(t, core.UntitledTitle, core.DisplayTitle(core.Document{Title: "  "}))
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "DELETE 42", core.Event{Type: core.EventDelete, ID: "42"}.String())
	assert.Equal(t, "STORAGE simpleDocs", core.Event{Type: core.EventStorage, Key: core.KeyDocuments}.String())
}
