package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/folio-site/portfolio/internal/models"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrInvalidProject is returned when a project file decodes but is missing
// required fields.
var ErrInvalidProject = errors.New("invalid project")

const maxConcurrentReads = 8

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads every entry of dir as one project file and returns the
// resulting catalog. Any unreadable, malformed or invalid entry fails the
// whole load; a partial catalog is never returned.
//
// Entries are folded in os.ReadDir order (sorted by filename), so for
// duplicate ids the lexically last file wins.
func Load(ctx context.Context, dir string) (*Catalog, error) {
	slog.Debug("Loading project catalog", "dir", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	projects := make([]models.Project, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := readProject(path)
			if err != nil {
				return err
			}
			projects[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := New(projects...)
	slog.Info("Project catalog loaded", "dir", dir, "files", len(entries), "projects", c.Len())
	return c, nil
}

func readProject(path string) (models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}

	p, err := decodeProject(filepath.Ext(path), data)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to parse project file %s: %w", path, err)
	}

	if err := validate.Struct(p); err != nil {
		return models.Project{}, fmt.Errorf("%w: %s: %w", ErrInvalidProject, path, err)
	}

	return p, nil
}

// decodeProject picks the format from the file extension. Files without a
// recognised extension are treated as JSON.
func decodeProject(ext string, data []byte) (models.Project, error) {
	var p models.Project
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
			return p, fmt.Errorf("toml decode: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("json unmarshal: %w", err)
		}
	}
	return p, nil
}
