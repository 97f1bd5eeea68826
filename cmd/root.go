package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/folio-site/portfolio/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Personal portfolio website backend",
		Long: `Portfolio serves a personal website: static pages, a generated navigation bar,
random dog pictures and project details rendered as htmx fragments.

Project descriptions are loaded once at startup from a directory of JSON, YAML
or TOML files, one project per file.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML site config")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Add subcommands
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))

	return cmd
}

// loadConfig resolves the config for a subcommand and installs the logger.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return cfg, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return cfg, nil
}

// overrideString copies a flag value into dst when the flag was set.
func overrideString(cmd *cobra.Command, name string, dst *string, value string) {
	if cmd.Flags().Changed(name) {
		*dst = value
	}
}

func applyPathFlags(cmd *cobra.Command, cfg *config.Config, assets, projects, dogs string) error {
	overrideString(cmd, "assets", &cfg.AssetsDir, assets)
	overrideString(cmd, "projects", &cfg.ProjectsDir, projects)
	overrideString(cmd, "dogs", &cfg.DogsDir, dogs)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}
