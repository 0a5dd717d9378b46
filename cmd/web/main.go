// Package main is the entry point for the Foxico landing page server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No presentation logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkordes/foxico-landing/internal/assets"
	"github.com/pkordes/foxico-landing/internal/catalog"
	"github.com/pkordes/foxico-landing/internal/config"
	"github.com/pkordes/foxico-landing/internal/handler"
	"github.com/pkordes/foxico-landing/internal/service"
	"github.com/pkordes/foxico-landing/internal/view"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use the default text logger before the JSON logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	// --- Catalog ----------------------------------------------------------
	// The destination list is loaded once and never changes while running.
	src := catalog.Default()
	if cfg.CatalogPath != "" {
		src = catalog.FromFile(cfg.CatalogPath)
	}
	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStart()

	destinations, err := src.Load(startCtx)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog loaded", "destinations", destinations.Len(), "path", cfg.CatalogPath)

	// --- Assets -----------------------------------------------------------
	// Probing only annotates <img> sizes; a missing asset is a warning, not fatal.
	landing := service.NewLandingService(destinations)
	assetFS := os.DirFS(cfg.AssetsDir)
	manifest, err := assets.Probe(startCtx, assetFS, imagePaths(landing), logger)
	if err != nil {
		slog.Error("failed to probe assets", "error", err)
		os.Exit(1)
	}
	slog.Info("assets probed", "dir", cfg.AssetsDir, "sized", manifest.Len())

	// --- Router -----------------------------------------------------------
	srv := handler.NewServer(landing, view.NewRenderer(handler.AssetPrefix, manifest), logger)
	router := handler.NewRouter(srv, handler.RouterOptions{
		Logger:       logger,
		Assets:       assets.Handler(assetFS),
		CORSOrigins:  cfg.CORSOrigins,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// imagePaths lists every image the page references: background, logo and
// one per destination card.
func imagePaths(landing *service.LandingService) []string {
	v := landing.Build(landing.Mount())
	paths := []string{v.BackgroundPath, v.LogoImage}
	for _, c := range v.Cards {
		paths = append(paths, c.Image)
	}
	return paths
}
