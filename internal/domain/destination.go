// Package domain contains the core data types for the Foxico landing page.
// This package has zero external dependencies and is imported by every other
// internal package (catalog, service, view, handler).
package domain

import (
	"fmt"
	"strings"
)

// MaxRating is the highest number of rating icons a card renders.
const MaxRating = 5

// Destination is a single featured travel destination shown as a card.
// Values are immutable once placed in a Catalog.
type Destination struct {
	// ID is a small unique integer used only as a rendering key.
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Image  string `json:"image"`  // asset path, e.g. "/bali-beach.jpg"
	Rating int    `json:"rating"` // number of stars; clamped at render time
	Link   string `json:"link"`   // relative navigation target
}

// ClampRating maps any rating into the renderable range [0, MaxRating].
// Catalogs may carry out-of-range ratings; only the rendered icon count is bounded.
func ClampRating(r int) int {
	if r < 0 {
		return 0
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

// Catalog is the ordered, read-only list of destinations rendered on the page.
// The zero value is an empty catalog.
type Catalog struct {
	items []Destination
}

// NewCatalog validates dests and returns a Catalog holding a private copy of them.
// Order is preserved. An empty input yields an empty, valid catalog.
func NewCatalog(dests []Destination) (Catalog, error) {
	seen := make(map[int]struct{}, len(dests))
	for i, d := range dests {
		if strings.TrimSpace(d.Title) == "" {
			return Catalog{}, fmt.Errorf("destination %d: %w: title is required", i, ErrValidation)
		}
		if !strings.HasPrefix(d.Link, "/") {
			return Catalog{}, fmt.Errorf("destination %d: %w: link must be a relative path starting with /", i, ErrValidation)
		}
		if _, dup := seen[d.ID]; dup {
			return Catalog{}, fmt.Errorf("destination %d: %w: duplicate id %d", i, ErrValidation, d.ID)
		}
		seen[d.ID] = struct{}{}
	}

	items := make([]Destination, len(dests))
	copy(items, dests)
	return Catalog{items: items}, nil
}

// All returns the destinations in catalog order.
// The returned slice is a copy; mutating it does not affect the catalog.
func (c Catalog) All() []Destination {
	out := make([]Destination, len(c.items))
	copy(out, c.items)
	return out
}

// ByID returns the destination with the given id, or ErrNotFound.
func (c Catalog) ByID(id int) (Destination, error) {
	for _, d := range c.items {
		if d.ID == id {
			return d, nil
		}
	}
	return Destination{}, fmt.Errorf("destination %d: %w", id, ErrNotFound)
}

// Len returns the number of destinations.
func (c Catalog) Len() int {
	return len(c.items)
}

// DefaultDestinations returns the three destinations featured on the live page.
func DefaultDestinations() []Destination {
	return []Destination{
		{ID: 1, Title: "Buddha Temple, Thailand", Image: "/thailand-temple.jpg", Rating: 5, Link: "/destinations/thailand"},
		{ID: 2, Title: "Broken Beach, Bali", Image: "/bali-beach.jpg", Rating: 5, Link: "/destinations/bali"},
		{ID: 3, Title: "Kerala", Image: "/kerala.jpg", Rating: 5, Link: "/destinations/kerala"},
	}
}
