package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/folio/pkg/core"
	"github.com/aretw0/folio/pkg/export"
)

func TestHTML(t *testing.T) {
	out, err := export.HTML("Tom & Jerry <3", "<h1>Hi</h1><p>there</p>")
	require.NoError(t, err)

	page := string(out)
	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, `<meta charset="UTF-8">`)
	assert.Contains(t, page, "<title>Tom &amp; Jerry &lt;3</title>")
	assert.Contains(t, page, "<h1>Hi</h1><p>there</p>")
	assert.Contains(t, page, "max-width: 800px")
}

func TestHTML_BlankTitle(t *testing.T) {
	out, err := export.HTML("  ", "")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<title>Exported Document</title>")
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Shopping List", "shopping_list.html"},
		{"Q3 Report 2024", "q3_report_2024.html"},
		{"Café/notes", "caf__notes.html"},
		{"", "document.html"},
		{"   ", "document.html"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, export.Filename(tt.title))
		})
	}
}

func TestDocument(t *testing.T) {
	f, err := export.Document(core.Document{ID: "1", Title: "", Content: "<p>x</p>"})
	require.NoError(t, err)
	assert.Equal(t, "untitled_document.html", f.Name)
	assert.Contains(t, string(f.Data), "<title>Untitled Document</title>")
	assert.Contains(t, string(f.Data), "<p>x</p>")
}
