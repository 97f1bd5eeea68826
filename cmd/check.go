package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type checkReport struct {
	ProjectsDir string   `yaml:"projectsdir"`
	Projects    []string `yaml:"projects"`
	DogsDir     string   `yaml:"dogsdir"`
	DogPictures int      `yaml:"dogpictures"`
	Pages       []string `yaml:"pages"`
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var assets, projects, dogs string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load the site data without serving it",
		Long: `Runs the same startup load as serve and prints a YAML summary.

Use it before deploying to catch malformed project files, duplicate ids
(logged as warnings) or a missing page.`,
		Example: `  portfolio check
  portfolio check --projects ./drafts --log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if err := applyPathFlags(cmd, &cfg, assets, projects, dogs); err != nil {
				return err
			}

			site, err := loadSite(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			report := checkReport{
				ProjectsDir: cfg.ProjectsDir,
				Projects:    site.catalog.IDs(),
				DogsDir:     cfg.DogsDir,
				DogPictures: site.dogs.Len(),
			}
			for _, route := range site.handler.Routes() {
				report.Pages = append(report.Pages, route.Path)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(report); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVar(&assets, "assets", "assets", "Directory holding pages, css and scripts")
	cmd.Flags().StringVar(&projects, "projects", "assets/Projects", "Directory of project files")
	cmd.Flags().StringVar(&dogs, "dogs", "assets/Dogs", "Directory of dog pictures")

	return cmd
}
