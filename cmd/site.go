package cmd

import (
	"context"
	"fmt"

	"github.com/folio-site/portfolio/internal/catalog"
	"github.com/folio-site/portfolio/internal/config"
	"github.com/folio-site/portfolio/internal/handlers"
	"github.com/folio-site/portfolio/internal/sampler"
)

type site struct {
	catalog *catalog.Catalog
	dogs    *sampler.Sampler
	handler *handlers.Handler
}

// loadSite performs every startup read. Any failure means the site must
// not be served.
func loadSite(ctx context.Context, cfg config.Config) (*site, error) {
	cat, err := catalog.Load(ctx, cfg.ProjectsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	dogs, err := sampler.New(cfg.DogsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load dog pictures: %w", err)
	}

	h, err := handlers.New(cfg, cat, dogs)
	if err != nil {
		return nil, fmt.Errorf("failed to set up handlers: %w", err)
	}

	return &site{catalog: cat, dogs: dogs, handler: h}, nil
}
