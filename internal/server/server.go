package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/folio-site/portfolio/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

type PortfolioServer struct {
	Router  *chi.Mux
	handler *handlers.Handler
}

func New(h *handlers.Handler) *PortfolioServer {
	return &PortfolioServer{
		Router:  chi.NewRouter(),
		handler: h,
	}
}

func (s *PortfolioServer) MountHandlers() {
	h := s.handler

	s.Router.Use(RequestID)
	s.Router.Use(RequestLogger)
	s.Router.Use(middleware.Recoverer)

	for _, route := range h.Routes() {
		s.Router.Get(route.Path, h.Page(route.File))
	}

	s.Router.Get("/navbar", h.HandleNavbar)
	s.Router.Get("/get_project_data", h.HandleProjectData)
	s.Router.Get("/project_selector", h.HandleProjectSelector)
	s.Router.Get("/getdogs", h.HandleRandomDogs)
	s.Router.Get("/healthcheck", h.HandleHealthcheck)

	for _, asset := range []string{"/style.css", "/script.js", "/htmx.min.js"} {
		s.Router.Get(asset, h.HandleStatic)
	}

	mount := h.DogsMount()
	s.Router.Handle(mount+"/*", http.StripPrefix(mount, h.DogPictures()))

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		walkFunc := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			slog.Debug("Route mounted", "method", method, "route", route)
			return nil
		}
		if err := chi.Walk(s.Router, walkFunc); err != nil {
			slog.Debug("Unable to walk routes", "err", err)
		}
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *PortfolioServer) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Portfolio site available", "addr", addr, "url", "http://localhost"+addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "err", err)
			return err
		}
		// wait for ListenAndServe to return
		<-serverErr
		slog.Info("Server stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}
