package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/folio-site/portfolio/internal/catalog"
	"github.com/folio-site/portfolio/internal/config"
	"github.com/folio-site/portfolio/internal/handlers"
	"github.com/folio-site/portfolio/internal/sampler"
	"github.com/stretchr/testify/require"
)

var testDogs = []string{"biscuit.jpg", "pepper.png", "rex.jpeg"}

// newTestSite lays out a complete site on disk and loads it the same way
// the serve command does.
func newTestSite(t *testing.T) *PortfolioServer {
	t.Helper()
	cfg := config.Default()
	cfg.AssetsDir = t.TempDir()
	cfg.ProjectsDir = filepath.Join(cfg.AssetsDir, "Projects")
	cfg.DogsDir = filepath.Join(cfg.AssetsDir, "Dogs")
	require.NoError(t, os.Mkdir(cfg.ProjectsDir, 0755))
	require.NoError(t, os.Mkdir(cfg.DogsDir, 0755))

	files := map[string]string{
		"index.html":           "<html>home</html>",
		"projects.html":        "<html>projects</html>",
		"dogs.html":            "<html>dogs</html>",
		"interests.html":       "<html>interests</html>",
		"style.css":            "body{}",
		"script.js":            "customElements.define()",
		"htmx.min.js":          "var htmx",
		"Projects/skater.json": `{"id":"skater","name":"Skater","repo_url":"https://github.com/example/skater","description":"game","thumbnail_url":"/t.png","technologies_used":["Rust","Bevy"]}`,
		"Projects/folio.yaml":  "id: folio\nname: Folio\nrepo_url: https://github.com/example/folio\ndescription: This site\nthumbnail_url: /f.png\ntechnologies_used: [Go]\n",
	}
	for _, d := range testDogs {
		files["Dogs/"+d] = "image bytes of " + d
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.AssetsDir, name), []byte(content), 0644))
	}

	cat, err := catalog.Load(context.Background(), cfg.ProjectsDir)
	require.NoError(t, err)
	dogs, err := sampler.New(cfg.DogsDir)
	require.NoError(t, err)
	h, err := handlers.New(cfg, cat, dogs)
	require.NoError(t, err)

	s := New(h)
	s.MountHandlers()
	return s
}

func executeTestRequest(t *testing.T, s *PortfolioServer, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}
