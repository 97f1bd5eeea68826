package handlers

import (
	"io"
	"io/fs"
	"net/http"

	"github.com/folio-site/portfolio/internal/sampler"
)

// HandleRandomDogs returns ?num_dogs= randomly chosen dog pictures.
// Missing or invalid counts render an empty gallery.
func (h *Handler) HandleRandomDogs(w http.ResponseWriter, r *http.Request) {
	n := sampler.ParseCount(r.URL.Query().Get("num_dogs"), h.maxDogs)
	files := h.dogs.Sample(n)

	h.writeHTML(w, func(w io.Writer) error {
		return h.renderer.Dogs(w, h.dogsMount, files)
	})
}

// DogPictures serves image bytes from the dogs directory. It expects the
// mount prefix to be stripped already. Directories are not listed.
func (h *Handler) DogPictures() http.Handler {
	return http.FileServer(filesOnly{http.Dir(h.dogsDir)})
}

// filesOnly reports directories as missing so http.FileServer answers 404
// instead of rendering a listing.
type filesOnly struct {
	http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
