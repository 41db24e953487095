// Package views renders the server-side pages from embedded templates.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"

	"github.com/campus-pulse/campuspulse/internal/interfaces/http/session"
)

const (
	PageIndex           = "index.html"
	PageAbout           = "about.html"
	PageStudent         = "student.html"
	PageLecturerLogin   = "lecturer_login.html"
	PageLecturerHome    = "lecturer_dashboard.html"
	PageLecturerCourse  = "lecturer_course.html"
	PageNotFound        = "not_found.html"
	PageError           = "error.html"
	layoutTemplate      = "layout.html"
	layoutTemplateEntry = "layout"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

//go:embed content/about.md
var aboutMarkdown []byte

// Page is the data every template receives.
type Page struct {
	AppName string
	Title   string
	Flashes []session.Flash
	Session *session.Session
	Data    any
}

// Renderer implements gin's HTMLRender over one template set per page, each
// sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	layout, err := template.New(layoutTemplate).Funcs(funcs()).ParseFS(templateFS, "templates/"+layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	entries, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		name := path.Base(entry)
		if name == layoutTemplate {
			continue
		}
		t, err := template.Must(layout.Clone()).ParseFS(templateFS, entry)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		t = r.pages[PageError]
	}
	return render.HTML{Template: t, Name: layoutTemplateEntry, Data: data}
}

func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// AboutMarkdown is the source of the about page.
func AboutMarkdown() []byte {
	return aboutMarkdown
}

func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"upper": strings.ToUpper,
	}
}
