// Package markup inspects the serialized rich-text markup stored in documents.
//
// The editor never validates the HTML it is handed; these helpers only read
// it, and tolerate malformed input the same way a browser does.
package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/aretw0/folio/pkg/core"
)

// parse never fails on malformed markup; the tokenizer recovers like a browser.
func parse(content string) *html.Node {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil
	}
	return root
}

// FirstHeading returns the trimmed text of the first <h1> in document order.
// ok is false when there is no <h1> or it only holds whitespace.
func FirstHeading(content string) (string, bool) {
	root := parse(content)
	if root == nil {
		return "", false
	}
	h1 := find(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.H1
	})
	if h1 == nil {
		return "", false
	}
	text := strings.TrimSpace(textContent(h1))
	return text, text != ""
}

// PlainText returns the trimmed text of every text node in content.
func PlainText(content string) string {
	root := parse(content)
	if root == nil {
		return ""
	}
	return strings.TrimSpace(textContent(root))
}

// IsTrivial reports whether content carries no user input: blank markup,
// the placeholder, or the empty paragraph left by a cleared surface.
func IsTrivial(content string) bool {
	switch strings.TrimSpace(content) {
	case "", core.PlaceholderContent, core.EmptyParagraph, "<p></p>":
		return true
	}
	return false
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
