package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/folio-site/portfolio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8000", cfg.Addr())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	content := `port: "9090"
projects_dir: data/projects
max_dogs: 12
routes:
  - name: home
    path: /
    file: index.html
  - name: about
    path: /about
    file: about.html
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "data/projects", cfg.ProjectsDir)
	assert.Equal(t, "assets/Dogs", cfg.DogsDir, "unset keys keep defaults")
	assert.Equal(t, 12, cfg.MaxDogs)
	assert.Equal(t, []models.Route{
		{Name: "home", Path: "/", File: "index.html"},
		{Name: "about", Path: "/about", File: "about.html"},
	}, cfg.Routes)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9090\"\n"), 0644))
	t.Setenv("PORT", "7070")
	t.Setenv("DOGS_DIR", "/srv/dogs")
	t.Setenv("MAX_DOGS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "/srv/dogs", cfg.DogsDir)
	assert.Equal(t, 3, cfg.MaxDogs)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "malformed yaml", content: "port: [1"},
		{name: "bad port", content: "port: http"},
		{name: "relative mount", content: "dogs_mount: dogpictures"},
		{name: "negative max", content: "max_dogs: -1"},
		{name: "zero max", content: "max_dogs: 0"},
		{name: "max above ceiling", content: "max_dogs: 5000"},
		{name: "zero MAX_DOGS", env: map[string]string{"MAX_DOGS": "0"}},
		{name: "unknown log level", content: "log_level: loud"},
		{name: "no routes", content: "routes: []"},
		{name: "route without file", content: "routes:\n  - name: home\n    path: /\n"},
		{
			name:    "duplicate route path",
			content: "routes:\n  - {name: a, path: /, file: a.html}\n  - {name: b, path: /, file: b.html}\n",
		},
		{name: "bad MAX_DOGS", env: map[string]string{"MAX_DOGS": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "site.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "INFO", expected: slog.LevelInfo},
		{input: "warn", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "chatty", expected: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
}
