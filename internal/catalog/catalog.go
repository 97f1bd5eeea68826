// Package catalog holds the read-only table of showcased projects.
//
// A Catalog is built once at startup, either from a directory of project
// files (Load) or from values already in memory (New), and is never mutated
// afterwards. All methods are safe for concurrent use.
package catalog

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/folio-site/portfolio/internal/models"
)

type Catalog struct {
	projects map[string]models.Project
	// ids in first-seen order; one entry per distinct id
	order []string
}

// New builds a catalog from projects in the given order. When two projects
// share an id the later one replaces the earlier one.
func New(projects ...models.Project) *Catalog {
	c := &Catalog{
		projects: make(map[string]models.Project, len(projects)),
		order:    make([]string, 0, len(projects)),
	}
	for _, p := range projects {
		if _, exists := c.projects[p.ID]; exists {
			slog.Warn("Duplicate project id, keeping the later record", "id", p.ID, "name", p.Name)
		} else {
			c.order = append(c.order, p.ID)
		}
		p.TechnologiesUsed = slices.Clone(p.TechnologiesUsed)
		c.projects[p.ID] = p
	}
	return c
}

// Get returns the project stored under id. A miss is reported through the
// boolean, never as an error.
func (c *Catalog) Get(id string) (models.Project, bool) {
	p, ok := c.projects[id]
	if !ok {
		return models.Project{}, false
	}
	p.TechnologiesUsed = slices.Clone(p.TechnologiesUsed)
	return p, true
}

// All yields every project exactly once. The sequence can be ranged over
// any number of times.
func (c *Catalog) All() iter.Seq[models.Project] {
	return func(yield func(models.Project) bool) {
		for _, id := range c.order {
			p := c.projects[id]
			p.TechnologiesUsed = slices.Clone(p.TechnologiesUsed)
			if !yield(p) {
				return
			}
		}
	}
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// IDs returns the project ids in enumeration order.
func (c *Catalog) IDs() []string {
	return slices.Clone(c.order)
}
