package view

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// attrs is a flat key/value list: attrs{"class", "nav", "href", "#"}.
// A slice keeps attribute order stable in the output, unlike a map.
type attrs []string

// el builds an element node with the given attributes and children.
func el(a atom.Atom, at attrs, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(at); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: at[i], Val: at[i+1]})
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// svgEl builds an element in the SVG namespace. SVG tag names such as "path"
// have no atom in the HTML table.
func svgEl(tag string, at attrs, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, Namespace: "svg"}
	for i := 0; i+1 < len(at); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: at[i], Val: at[i+1]})
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
