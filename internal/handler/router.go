package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/foxico-landing/internal/middleware"
)

// AssetPrefix is the URL path under which static assets are served.
// The renderer prefixes catalog image paths with it.
const AssetPrefix = "/static"

// RouterOptions carries the cross-cutting settings for NewRouter.
type RouterOptions struct {
	// Logger receives one line per request. Defaults to slog.Default().
	Logger *slog.Logger

	// Assets serves files by catalog path (e.g. "/kerala.jpg"). Nil disables /static.
	Assets http.Handler

	// CORSOrigins are the origins allowed to fetch assets cross-origin.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies. Zero or negative disables the cap.
	MaxBodyBytes int64
}

// NewRouter builds the chi router for the whole site.
//
// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer →
// MaxBodySize → SecurityHeaders. The security middleware runs last so the
// nonce it stores is visible to the page handler.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	if opts.MaxBodyBytes > 0 {
		r.Use(middleware.NewMaxBodySizeHandler(opts.MaxBodyBytes))
	}
	r.Use(middleware.NewSecurityHeaders())

	r.NotFound(s.NotFound)
	r.MethodNotAllowed(s.MethodNotAllowed)

	r.Get("/", s.GetLanding)
	r.Get("/healthz", s.GetHealth)
	r.Get("/cards/{id}", s.GetCard)

	if opts.Assets != nil {
		r.Route(AssetPrefix, func(r chi.Router) {
			r.Use(middleware.NewCORSHandler(opts.CORSOrigins))
			r.Handle("/*", http.StripPrefix(AssetPrefix, opts.Assets))
		})
	}

	return r
}
