// Package handler implements the HTTP surface of the landing page server.
// All handlers are methods on Server. Methods are split into files by route
// (landing.go, health.go) but share the same Server struct so they can access
// its dependencies.
package handler

import (
	"io"
	"log/slog"

	"github.com/pkordes/foxico-landing/internal/domain"
)

// LandingPage defines the presentation operations the page handler depends on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a stub without building a catalog.
type LandingPage interface {
	Mount() domain.ViewState
	SelectSlide(state *domain.ViewState, index int) error
	NavigateToDestination(id int) (string, error)
	Build(state domain.ViewState) domain.LandingView
}

// PageRenderer serialises a view model to HTML.
type PageRenderer interface {
	Render(w io.Writer, v domain.LandingView, nonce string) error
}

// Server holds the dependencies shared by all handlers.
type Server struct {
	page     LandingPage
	renderer PageRenderer
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(page LandingPage, renderer PageRenderer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{page: page, renderer: renderer, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}
