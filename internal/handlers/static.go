package handlers

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

// HandleStatic serves a top level asset such as /style.css from the
// assets directory.
func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")

	// Prevent directory traversal attacks
	if name == "" || strings.Contains(name, "..") || strings.Contains(name, "/") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	setContentType(w, name)
	http.ServeFile(w, r, filepath.Join(h.assetsDir, name))
}

// Page returns the handler for one navigation route.
func (h *Handler) Page(file string) http.HandlerFunc {
	full := filepath.Join(h.assetsDir, file)
	return func(w http.ResponseWriter, r *http.Request) {
		setContentType(w, full)
		http.ServeFile(w, r, full)
	}
}

// Set appropriate content type based on file extension
func setContentType(w http.ResponseWriter, name string) {
	switch {
	case strings.HasSuffix(name, ".css"):
		w.Header().Set("Content-Type", "text/css")
	case strings.HasSuffix(name, ".js"):
		w.Header().Set("Content-Type", "text/javascript")
	case strings.HasSuffix(name, ".html"):
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
}
