package models

// Project is one showcased work item, loaded from a file under the projects directory.
type Project struct {
	ID               string   `json:"id" yaml:"id" toml:"id" validate:"required"`
	Name             string   `json:"name" yaml:"name" toml:"name" validate:"required"`
	RepoURL          string   `json:"repo_url" yaml:"repo_url" toml:"repo_url" validate:"required"`
	Description      string   `json:"description" yaml:"description" toml:"description" validate:"required"`
	ThumbnailURL     string   `json:"thumbnail_url" yaml:"thumbnail_url" toml:"thumbnail_url" validate:"required"`
	// required on a slice only rejects nil, so an empty list is accepted
	TechnologiesUsed []string `json:"technologies_used" yaml:"technologies_used" toml:"technologies_used" validate:"required"`
}

// Route is a top level page shown in the navigation bar
type Route struct {
	Name string `yaml:"name" validate:"required"`
	Path string `yaml:"path" validate:"required,startswith=/"`
	File string `yaml:"file" validate:"required"`
}
