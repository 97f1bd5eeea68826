package handlers

import (
	"io"
	"log/slog"
	"net/http"
)

// HandleProjectData returns the detail fragment for ?id=. A missing id or
// an unknown one still answers 200 with a short message fragment.
func (h *Handler) HandleProjectData(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("id") {
		slog.Info("Bad request for project data", "query", r.URL.RawQuery)
		h.writeHTML(w, h.renderer.BadRequest)
		return
	}

	id := query.Get("id")
	project, ok := h.catalog.Get(id)
	if !ok {
		slog.Debug("Project not found", "id", id)
		h.writeHTML(w, h.renderer.NotFound)
		return
	}

	h.writeHTML(w, func(w io.Writer) error {
		return h.renderer.Project(w, project)
	})
}

func (h *Handler) HandleProjectSelector(w http.ResponseWriter, r *http.Request) {
	h.writeHTML(w, func(w io.Writer) error {
		return h.renderer.Selector(w, h.catalog.All())
	})
}
