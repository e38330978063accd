package markup

import "github.com/aretw0/folio/pkg/core"

const (
	// TitleLength is the number of characters kept when a title is derived
	// from body text.
	TitleLength = 30

	// Ellipsis marks a truncated derived title.
	Ellipsis = "..."
)

// InferTitle derives the title a document should carry after its content
// changed to content.
//
//   - A non-blank first <h1> always wins, even over a title set by the user.
//   - Otherwise a document still carrying core.DefaultTitle takes the first
//     TitleLength characters of its plain text once it holds real input.
//   - Otherwise oldTitle is kept, even if the heading it came from is gone.
func InferTitle(oldTitle, content string) string {
	if heading, ok := FirstHeading(content); ok {
		return heading
	}
	if oldTitle != core.DefaultTitle || IsTrivial(content) {
		return oldTitle
	}
	text := PlainText(content)
	if text == "" {
		return oldTitle
	}
	return Truncate(text, TitleLength)
}

// Truncate cuts s to n characters and appends Ellipsis when anything was cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + Ellipsis
}
