// Package fragments renders the HTML snippets returned to the htmx front end.
package fragments

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"iter"
	"log/slog"
	"net/url"
	"strings"

	"github.com/folio-site/portfolio/internal/models"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const (
	NotFoundMessage   = "Project not Found!"
	BadRequestMessage = "bad request!"
)

// Renderer is safe for concurrent use once built.
type Renderer struct {
	tmpl   *template.Template
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment templates: %w", err)
	}
	return &Renderer{
		tmpl:   tmpl,
		md:     goldmark.New(),
		policy: bluemonday.UGCPolicy(),
	}, nil
}

type projectView struct {
	Name         string
	RepoURL      string
	Description  template.HTML
	ThumbnailURL string
	Technologies []string
}

// Project writes the detail view of p.
func (r *Renderer) Project(w io.Writer, p models.Project) error {
	return r.tmpl.ExecuteTemplate(w, "project", projectView{
		Name:         p.Name,
		RepoURL:      p.RepoURL,
		Description:  r.description(p.Description),
		ThumbnailURL: p.ThumbnailURL,
		Technologies: p.TechnologiesUsed,
	})
}

// description renders Markdown and strips anything outside the UGC policy.
func (r *Renderer) description(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		slog.Warn("Failed to render project description", "err", err)
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}

func (r *Renderer) NotFound(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "message", NotFoundMessage)
}

func (r *Renderer) BadRequest(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "message", BadRequestMessage)
}

type selectorButton struct {
	Name string
	Vals string
}

// Selector writes one button per project. Each button asks for the
// project's detail fragment when clicked.
func (r *Renderer) Selector(w io.Writer, projects iter.Seq[models.Project]) error {
	var buttons []selectorButton
	for p := range projects {
		vals, err := json.Marshal(map[string]string{"id": p.ID})
		if err != nil {
			return fmt.Errorf("failed to encode selector values: %w", err)
		}
		buttons = append(buttons, selectorButton{Name: p.Name, Vals: string(vals)})
	}
	return r.tmpl.ExecuteTemplate(w, "selector", buttons)
}

type dogImage struct {
	Num int
	Src string
}

// Dogs writes one numbered image per filename, each served from mount.
func (r *Renderer) Dogs(w io.Writer, mount string, files []string) error {
	mount = strings.TrimSuffix(mount, "/")
	images := make([]dogImage, len(files))
	for i, f := range files {
		images[i] = dogImage{Num: i + 1, Src: mount + "/" + url.PathEscape(f)}
	}
	return r.tmpl.ExecuteTemplate(w, "dogs", images)
}

func (r *Renderer) Navbar(w io.Writer, routes []models.Route) error {
	return r.tmpl.ExecuteTemplate(w, "navbar", routes)
}
