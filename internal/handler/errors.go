package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const notFoundMessage = "The page you are looking for does not exist."

// writeErrorPage writes a minimal standalone HTML error page with status.
// It carries no styles so it stays valid under the page's content security
// policy without a nonce.
func writeErrorPage(w http.ResponseWriter, status int, message string) {
	title := strconv.Itoa(status) + " " + http.StatusText(status)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html,
		element(atom.Head, element(atom.Title, textNode(title))),
		element(atom.Body,
			element(atom.H1, textNode(title)),
			element(atom.P, textNode(message)),
			link("/", "Back to home"),
		),
	)
	doc.AppendChild(root)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		http.Error(w, title, status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NotFound renders the 404 page for unknown routes, including destination
// pages, which this server does not host.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	writeErrorPage(w, http.StatusNotFound, notFoundMessage)
}

// MethodNotAllowed renders the 405 page.
func (s *Server) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeErrorPage(w, http.StatusMethodNotAllowed, "This page can only be viewed.")
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func link(href, label string) *html.Node {
	n := element(atom.A, textNode(label))
	n.Attr = []html.Attribute{{Key: "href", Val: href}}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
