package handlers

import (
	"io"
	"net/http"
)

func (h *Handler) HandleNavbar(w http.ResponseWriter, r *http.Request) {
	h.writeHTML(w, func(w io.Writer) error {
		return h.renderer.Navbar(w, h.routes)
	})
}
