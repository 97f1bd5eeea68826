package handlers

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/folio-site/portfolio/internal/config"
	"github.com/folio-site/portfolio/internal/fragments"
	"github.com/folio-site/portfolio/internal/models"
)

// ProjectCatalog is the read side of catalog.Catalog.
type ProjectCatalog interface {
	Get(id string) (models.Project, bool)
	All() iter.Seq[models.Project]
}

// ImageSampler is satisfied by sampler.Sampler.
type ImageSampler interface {
	Sample(n int) []string
}

type Handler struct {
	catalog   ProjectCatalog
	dogs      ImageSampler
	renderer  *fragments.Renderer
	routes    []models.Route
	assetsDir string
	dogsDir   string
	dogsMount string
	maxDogs   int
}

// New wires the loaded catalog and image sampler into the request handlers.
// Every page named in cfg.Routes must exist under cfg.AssetsDir.
func New(cfg config.Config, catalog ProjectCatalog, dogs ImageSampler) (*Handler, error) {
	renderer, err := fragments.NewRenderer()
	if err != nil {
		return nil, err
	}

	for _, route := range cfg.Routes {
		path := filepath.Join(cfg.AssetsDir, route.File)
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("page for route %s: %w", route.Path, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("page for route %s: %s is a directory", route.Path, path)
		}
	}

	return &Handler{
		catalog:   catalog,
		dogs:      dogs,
		renderer:  renderer,
		routes:    append([]models.Route(nil), cfg.Routes...),
		assetsDir: cfg.AssetsDir,
		dogsDir:   cfg.DogsDir,
		dogsMount: cfg.DogsMount,
		maxDogs:   cfg.MaxDogs,
	}, nil
}

// Routes returns the site pages in navigation order.
func (h *Handler) Routes() []models.Route {
	return append([]models.Route(nil), h.routes...)
}

// DogsMount is the URL prefix dog pictures are served under.
func (h *Handler) DogsMount() string {
	return h.dogsMount
}

// Response helpers
func (h *Handler) writeHTML(w http.ResponseWriter, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		slog.Error("Unable to render HTML fragment", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Unable to write HTML response", "err", err)
	}
}

func (h *Handler) HandleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Unable to write healthcheck", "err", err)
	}
}
