// Package core holds the domain types shared by every folio component.
package core

import "strings"

const (
	// DefaultTitle is given to documents created without an explicit title.
	DefaultTitle = "New Document"

	// UntitledTitle is shown in place of a blank title. It is never stored.
	UntitledTitle = "Untitled Document"

	// PlaceholderContent is the empty-state markup of a new document.
	PlaceholderContent = "<p>Start typing here...</p>"

	// EmptyParagraph is what the rendering surface leaves behind once the
	// placeholder has been cleared.
	EmptyParagraph = "<p><br></p>"

	// WelcomeTitle and WelcomeContent seed the collection on first run.
	WelcomeTitle   = "First Note"
	WelcomeContent = "<p>Welcome! This is your first note.</p><h1>Heading Example</h1><p>Add your text here.</p>"
)

// Document is the central entity of the domain: a single user-authored note.
// Content is serialized rich-text markup and is never parsed on write.
type Document struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// DisplayTitle returns the title to render for doc.
func DisplayTitle(doc Document) string {
	if strings.TrimSpace(doc.Title) == "" {
		return UntitledTitle
	}
	return doc.Title
}
