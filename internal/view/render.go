// Package view renders the landing page view model to HTML.
//
// The page is built as a golang.org/x/net/html node tree and serialised with
// html.Render, so every attribute and text value is escaped by the parser
// package rather than by string concatenation. The tree is a pure function of
// the view model: rendering the same LandingView twice yields identical bytes.
package view

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pkordes/foxico-landing/internal/domain"
)

// starPath is the outline of a single rating star in a 20x20 viewBox.
const starPath = "M9.049 2.927c.3-.921 1.603-.921 1.902 0l1.07 3.292a1 1 0 00.95.69h3.462c.969 0 1.371 1.24.588 1.81l-2.8 2.034a1 1 0 00-.364 1.118l1.07 3.292c.3.921-.755 1.688-1.54 1.118l-2.8-2.034a1 1 0 00-1.175 0l-2.8 2.034c-.784.57-1.838-.197-1.539-1.118l1.07-3.292a1 1 0 00-.364-1.118L2.98 8.72c-.783-.57-.38-1.81.588-1.81h3.461a1 1 0 00.951-.69l1.07-3.292z"

// ImageSizer reports the intrinsic size of an image asset, if known.
// assets.Manifest implements it; a nil ImageSizer means no sizes are emitted.
type ImageSizer interface {
	Size(path string) (width, height int, ok bool)
}

// Renderer turns a LandingView into an HTML document.
type Renderer struct {
	assetPrefix string
	sizes       ImageSizer
}

// NewRenderer returns a Renderer that prefixes every image path with
// assetPrefix (e.g. "/static") and annotates images with sizes when known.
func NewRenderer(assetPrefix string, sizes ImageSizer) *Renderer {
	return &Renderer{assetPrefix: assetPrefix, sizes: sizes}
}

// Render writes the complete document for v to w. nonce is placed on the
// inline stylesheet so that it satisfies the page's content security policy;
// an empty nonce omits the attribute.
func (r *Renderer) Render(w io.Writer, v domain.LandingView, nonce string) error {
	if err := html.Render(w, r.Document(v, nonce)); err != nil {
		return fmt.Errorf("view.Renderer.Render: %w", err)
	}
	return nil
}

// Document builds the node tree for v without serialising it.
func (r *Renderer) Document(v domain.LandingView, nonce string) *html.Node {
	css := &styleSheet{}

	body := el(atom.Body, nil,
		el(atom.Main, attrs{"class", "page"},
			r.backdrop(v),
			el(atom.Div, attrs{"class", "content"},
				r.nav(v),
				el(atom.Section, attrs{"class", "hero"},
					r.hero(v.Hero, css),
					r.cards(v.Cards, css),
					dots(v.Dots),
				),
			),
		),
	)

	styleAttrs := attrs{}
	if nonce != "" {
		styleAttrs = attrs{"nonce", nonce}
	}
	head := el(atom.Head, nil,
		el(atom.Meta, attrs{"charset", "utf-8"}),
		el(atom.Meta, attrs{"name", "viewport", "content", "width=device-width, initial-scale=1"}),
		el(atom.Title, nil, text(v.Brand)),
		el(atom.Style, styleAttrs, text(css.String())),
	)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(el(atom.Html, attrs{"lang", "en"}, head, body))
	return doc
}

func (r *Renderer) backdrop(v domain.LandingView) *html.Node {
	return el(atom.Div, attrs{"class", "backdrop"},
		r.img(v.BackgroundPath, v.BackgroundAlt, "backdrop__image", "fetchpriority", "high"),
		el(atom.Div, attrs{"class", "backdrop__overlay"}),
	)
}

func (r *Renderer) nav(v domain.LandingView) *html.Node {
	links := el(atom.Div, attrs{"class", "nav__links"})
	for _, l := range v.NavLinks {
		links.AppendChild(el(atom.A, attrs{"href", l.Href}, text(l.Label)))
	}
	links.AppendChild(el(atom.Div, attrs{"class", "nav__user"},
		el(atom.Div, attrs{"class", "nav__avatar"}),
		el(atom.Span, nil, text(v.Greeting)),
	))

	logo := r.img(v.LogoImage, v.Brand, "")
	setAttr(logo, "width", "40")
	setAttr(logo, "height", "40")

	return el(atom.Nav, attrs{"class", "nav"},
		el(atom.Div, attrs{"class", "nav__brand"}, logo, el(atom.Span, nil, text(v.Brand))),
		links,
	)
}

func (r *Renderer) hero(h domain.Hero, css *styleSheet) *html.Node {
	chevron := svgEl("svg", attrs{"fill", "none", "stroke", "currentColor", "viewBox", "0 0 24 24", "aria-hidden", "true"},
		svgEl("path", attrs{"stroke-linecap", "round", "stroke-linejoin", "round", "stroke-width", "2", "d", "M9 5l7 7-7 7"}),
	)
	return el(atom.Div, attrs{"class", "hero__copy"},
		el(atom.H1, attrs{"class", "hero__heading " + css.animation(h.HeadingAnimation)}, text(h.Heading)),
		el(atom.P, attrs{"class", "hero__text " + css.animation(h.ParagraphAnimation)}, text(h.Paragraph)),
		el(atom.Button, attrs{"type", "button", "class", "hero__cta " + css.animation(h.CTAAnimation)},
			text(h.CTALabel), chevron),
	)
}

// cards renders each card as a link so a click is a full document navigation.
// The entrance animation sits on a wrapper; a finished animation with
// fill-mode "both" would otherwise pin the transform and mask the hover scale.
func (r *Renderer) cards(cards []domain.Card, css *styleSheet) *html.Node {
	row := el(atom.Div, attrs{"class", "cards"})
	if len(cards) > 0 {
		css.hover(".card", cards[0].Hover)
	}
	for _, c := range cards {
		stars := el(atom.Div, attrs{"class", "card__stars", "aria-label", fmt.Sprintf("%d out of %d stars", c.Stars, domain.MaxRating)})
		for s := 0; s < c.Stars; s++ {
			stars.AppendChild(svgEl("svg", attrs{"class", "star", "viewBox", "0 0 20 20", "aria-hidden", "true"},
				svgEl("path", attrs{"d", starPath}),
			))
		}

		link := el(atom.A, attrs{"class", "card", "href", c.Link, "data-key", strconv.Itoa(c.Key)},
			r.img(c.Image, c.Title, "card__image", "loading", "lazy"),
			el(atom.Div, attrs{"class", "card__caption"},
				el(atom.H3, attrs{"class", "card__title"}, text(c.Title)),
				stars,
				el(atom.Span, attrs{"class", "card__details"}, text(c.DetailsLabel)),
			),
		)
		row.AppendChild(el(atom.Div, attrs{"class", "card-slot " + css.animation(c.Animation)}, link))
	}
	return row
}

// dots renders the slide indicators. Each dot reloads the page with its
// index selected; the cards do not depend on it.
func dots(ds []domain.Dot) *html.Node {
	list := el(atom.Nav, attrs{"class", "dots", "aria-label", "Slides"})
	for _, d := range ds {
		class := "dot"
		if d.Active {
			class = "dot dot--active"
		}
		n := el(atom.A, attrs{
			"class", class,
			"href", "/?slide=" + strconv.Itoa(d.Index),
			"aria-label", "Slide " + strconv.Itoa(d.Index+1),
		})
		if d.Active {
			setAttr(n, "aria-current", "true")
		}
		list.AppendChild(n)
	}
	return list
}

// img builds an <img> for an asset path, with intrinsic size when the sizer
// knows it. extra is a flat list of additional attributes.
func (r *Renderer) img(path, alt, class string, extra ...string) *html.Node {
	at := attrs{"src", r.assetPrefix + path, "alt", alt}
	if class != "" {
		at = append(at, "class", class)
	}
	if r.sizes != nil {
		if w, h, ok := r.sizes.Size(path); ok {
			at = append(at, "width", strconv.Itoa(w), "height", strconv.Itoa(h))
		}
	}
	at = append(at, extra...)
	return el(atom.Img, at)
}

// setAttr replaces or adds an attribute on n.
func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
