// Package config resolves the site settings from defaults, an optional YAML
// file and environment variables, in increasing order of precedence.
// Command line flags are applied on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/folio-site/portfolio/internal/models"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string         `yaml:"port" validate:"required,numeric"`
	AssetsDir   string         `yaml:"assets_dir" validate:"required"`
	ProjectsDir string         `yaml:"projects_dir" validate:"required"`
	DogsDir     string         `yaml:"dogs_dir" validate:"required"`
	DogsMount   string         `yaml:"dogs_mount" validate:"required,startswith=/"`
	MaxDogs     int            `yaml:"max_dogs" validate:"gte=1,lte=1000"`
	LogLevel    string         `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Routes      []models.Route `yaml:"routes" validate:"required,min=1,dive"`
}

func Default() Config {
	return Config{
		Port:        "8000",
		AssetsDir:   "assets",
		ProjectsDir: "assets/Projects",
		DogsDir:     "assets/Dogs",
		DogsMount:   "/dogpictures",
		MaxDogs:     50,
		LogLevel:    "info",
		Routes:      DefaultRoutes(),
	}
}

// DefaultRoutes is the navigation bar, in display order.
func DefaultRoutes() []models.Route {
	return []models.Route{
		{Name: "home", Path: "/", File: "index.html"},
		{Name: "projects", Path: "/projects", File: "projects.html"},
		{Name: "dogs", Path: "/dogs", File: "dogs.html"},
		{Name: "interests", Path: "/interests", File: "interests.html"},
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		slog.Debug("Loaded config file", "path", path)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	for env, dst := range map[string]*string{
		"PORT":         &c.Port,
		"ASSETS_DIR":   &c.AssetsDir,
		"PROJECTS_DIR": &c.ProjectsDir,
		"DOGS_DIR":     &c.DogsDir,
		"DOGS_MOUNT":   &c.DogsMount,
		"LOG_LEVEL":    &c.LogLevel,
	} {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("MAX_DOGS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MAX_DOGS %q: %w", v, err)
		}
		c.MaxDogs = n
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seen := make(map[string]string, len(c.Routes))
	for _, r := range c.Routes {
		if prev, ok := seen[r.Path]; ok {
			return fmt.Errorf("invalid config: routes %q and %q share path %s", prev, r.Name, r.Path)
		}
		seen[r.Path] = r.Name
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// ParseLogLevel maps a level name to its slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return slog.LevelInfo, errors.Join(fmt.Errorf("unknown log level %q", level), err)
	}
	return l, nil
}
