// Package export renders a document as a standalone HTML page.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/aretw0/folio/pkg/core"
)

const (
	DefaultTitle    = "Exported Document"
	DefaultFilename = "Document"
	Extension       = ".html"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: sans-serif; max-width: 800px; margin: 20px auto; padding: 20px; line-height: 1.6; }
    img { max-width: 100%; height: auto; }
  </style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// File is an exported document ready to be written or downloaded.
type File struct {
	Name string
	Data []byte
}

// HTML wraps body in a complete HTML5 page. The title is escaped, the body
// is inserted as is. A blank title becomes DefaultTitle.
func HTML(title, body string) ([]byte, error) {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	var buf bytes.Buffer
	err := page.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  template.HTML(body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename derives a download name from title: every character outside
// [a-z0-9] (case-insensitive) becomes an underscore and the result is
// lower-cased.
func Filename(title string) string {
	if strings.TrimSpace(title) == "" {
		title = DefaultFilename
	}

	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + Extension
}

// Document exports doc under its display title.
func Document(doc core.Document) (File, error) {
	title := core.DisplayTitle(doc)
	data, err := HTML(title, doc.Content)
	if err != nil {
		return File{}, err
	}
	return File{Name: Filename(title), Data: data}, nil
}
