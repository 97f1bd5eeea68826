package cmd

import (
	"github.com/folio-site/portfolio/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port, assets, projects, dogs string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the portfolio web server",
		Long: `Loads every project file and the dog picture listing, then serves the site.

Loading happens once. If any project file is unreadable or malformed, or the
dog picture directory is empty, the server refuses to start.`,
		Example: `  # Start server on default port 8000
  portfolio serve

  # Start server on custom port with data from another checkout
  portfolio serve --port 3000 --assets ../site/assets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			overrideString(cmd, "port", &cfg.Port, port)
			if err := applyPathFlags(cmd, &cfg, assets, projects, dogs); err != nil {
				return err
			}

			site, err := loadSite(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			s := server.New(site.handler)
			s.MountHandlers()

			// Runs until fang cancels the context on interrupt
			return s.Run(cmd.Context(), cfg.Addr())
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8000", "Port to listen on")
	cmd.Flags().StringVar(&assets, "assets", "assets", "Directory holding pages, css and scripts")
	cmd.Flags().StringVar(&projects, "projects", "assets/Projects", "Directory of project files")
	cmd.Flags().StringVar(&dogs, "dogs", "assets/Dogs", "Directory of dog pictures")

	return cmd
}
