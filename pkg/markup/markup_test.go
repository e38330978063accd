package markup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/folio/pkg/core"
	"github.com/aretw0/folio/pkg/markup"
)

func TestFirstHeading(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{"Simple", "<h1>Hello</h1><p>World</p>", "Hello", true},
		{"Trimmed", "<h1>  Spaced out \n</h1>", "Spaced out", true},
		{"Nested Inline", "<h1>Big <b>bold</b> idea</h1>", "Big bold idea", true},
		{"First Wins", "<p>x</p><h1>One</h1><h1>Two</h1>", "One", true},
		{"Blank Heading", "<h1>   </h1><p>text</p>", "", false},
		{"No Heading", "<h2>Sub</h2><p>text</p>", "", false},
		{"Empty", "", "", false},
		{"Unclosed", "<h1>Open ended", "Open ended", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := markup.FirstHeading(tt.content)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "HelloWorld", markup.PlainText("<h1>Hello</h1><p>World</p>"))
	assert.Equal(t, "a & b", markup.PlainText("<p> a &amp; b </p>"))
	assert.Equal(t, "", markup.PlainText(core.EmptyParagraph))
	assert.Equal(t, "", markup.PlainText(`<img src="x.png">`))
}

func TestIsTrivial(t *testing.T) {
	assert.True(t, markup.IsTrivial(""))
	assert.True(t, markup.IsTrivial("   "))
	assert.True(t, markup.IsTrivial(core.PlaceholderContent))
	assert.True(t, markup.IsTrivial(" "+core.EmptyParagraph+"\n"))
	assert.False(t, markup.IsTrivial("<p>hi</p>"))
}

func TestInferTitle(t *testing.T) {
	fifty := strings.Repeat("x", 50)

	tests := []struct {
		name     string
		oldTitle string
		content  string
		want     string
	}{
		{"Heading Sets Title", core.DefaultTitle, "<h1>Hello</h1><p>World</p>", "Hello"},
		{"Heading Overrides User Title", "My own title", "<h1>Hello</h1>", "Hello"},
		{"Truncates Body Text", core.DefaultTitle, "<p>" + fifty + "</p>", strings.Repeat("x", 30) + "..."},
		{"Short Body Text", core.DefaultTitle, "<p>Short note</p>", "Short note"},
		{"Exactly Thirty", core.DefaultTitle, "<p>" + strings.Repeat("y", 30) + "</p>", strings.Repeat("y", 30)},
		{"Counts Characters Not Bytes", core.DefaultTitle, "<p>" + strings.Repeat("é", 31) + "</p>", strings.Repeat("é", 30) + "..."},
		{"User Title Kept", "Groceries", "<p>milk and eggs</p>", "Groceries"},
		{"Placeholder Ignored", core.DefaultTitle, core.PlaceholderContent, core.DefaultTitle},
		{"Empty Paragraph Ignored", core.DefaultTitle, core.EmptyParagraph, core.DefaultTitle},
		{"Image Only Keeps Default", core.DefaultTitle, `<img src="cat.png">`, core.DefaultTitle},
		{"Stale Heading Title Kept", "Old Heading", "<p>heading was removed</p>", "Old Heading"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markup.InferTitle(tt.oldTitle, tt.content))
		})
	}
}
