package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/foxico-landing/internal/domain"
	"github.com/pkordes/foxico-landing/internal/middleware"
)

// slideParam is the query parameter a dot link uses to select its slide.
const slideParam = "slide"

// GetLanding handles GET /.
//
// Every request mounts a fresh page. A ?slide=N parameter replays the dot
// click that produced it; a value that is not an integer in range is ignored
// and the initial state is rendered, because a stale or hand-edited link
// should still show the page.
func (s *Server) GetLanding(w http.ResponseWriter, r *http.Request) {
	state := s.page.Mount()

	if raw := r.URL.Query().Get(slideParam); raw != "" {
		if err := s.applySlide(&state, raw); err != nil {
			s.log.DebugContext(r.Context(), "ignoring slide parameter", "slide", raw, "error", err)
		}
	}

	// Render into a buffer first so a failure can still produce a clean 500.
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, s.page.Build(state), middleware.Nonce(r.Context())); err != nil {
		s.log.ErrorContext(r.Context(), "render landing page", "error", err)
		writeErrorPage(w, http.StatusInternalServerError, "Something went wrong while preparing this page.")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) applySlide(state *domain.ViewState, raw string) error {
	i, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	return s.page.SelectSlide(state, i)
}

// GetCard handles GET /cards/{id}.
// It redirects to the destination behind card id, the same target a click on
// the card navigates to. Unknown or malformed ids return 404.
func (s *Server) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorPage(w, http.StatusNotFound, notFoundMessage)
		return
	}

	link, err := s.page.NavigateToDestination(id)
	if errors.Is(err, domain.ErrNotFound) {
		writeErrorPage(w, http.StatusNotFound, notFoundMessage)
		return
	}
	if err != nil {
		s.log.ErrorContext(r.Context(), "resolve card", "id", id, "error", err)
		writeErrorPage(w, http.StatusInternalServerError, "Something went wrong while preparing this page.")
		return
	}

	http.Redirect(w, r, link, http.StatusSeeOther)
}
