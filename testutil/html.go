// Package testutil provides shared helpers for tests that inspect rendered HTML.
// Pages are parsed with golang.org/x/net/html and queried by class name, the
// same way a browser's querySelectorAll(".class") would find them.
package testutil

import (
	"io"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// ParseHTML parses a full document from r, failing the test on error.
func ParseHTML(t *testing.T, r io.Reader) *html.Node {
	t.Helper()

	doc, err := html.Parse(r)
	if err != nil {
		t.Fatalf("testutil.ParseHTML: %v", err)
	}
	return doc
}

// ByClass returns every element under root, in document order, whose class
// attribute contains class as a whole word.
func ByClass(root *html.Node, class string) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && HasClass(n, class) {
			out = append(out, n)
		}
	})
	return out
}

// ByTag returns every element under root with the given tag name.
func ByTag(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
	})
	return out
}

// HasClass reports whether n carries class in its class attribute.
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Attr returns the value of attribute key on n, or "" if absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether n has attribute key, regardless of value.
func HasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// Text returns the concatenated text content of n and its descendants.
func Text(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
