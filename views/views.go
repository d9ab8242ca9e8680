// Package views renders the console pages. The layout is parsed once at
// startup; each page is parsed on demand by the view that owns it.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"code.doorsys.dev/console/notify"
)

const (
	LayoutTemplate  = "app.html"
	RootElementID   = "app"
	timestampLayout = "2006-01-02 15:04:05"
)

//go:embed templates/layouts/*.html
var layoutFS embed.FS

//go:embed templates/pages/*.html
var pageFS embed.FS

//go:embed assets/*
var assetFS embed.FS

type NavLink struct {
	Label string
	Path  string
}

// PageData is handed to every page template. BasePath, Nav and Toasts are
// filled in by the TemplateSet.
type PageData struct {
	Title    string
	BasePath string
	Nav      []NavLink
	Toasts   notify.Config
	Notices  []notify.Notice
	Data     any
}

type TemplateSet struct {
	layouts  *template.Template
	pages    fs.FS
	basePath string
	nav      []NavLink
	toasts   notify.Config
}

func NewTemplateSet(basePath string, nav []NavLink, toasts notify.Config) (*TemplateSet, error) {
	basePath = strings.TrimRight(basePath, "/")

	layouts, err := template.New(LayoutTemplate).Funcs(funcs(basePath)).ParseFS(layoutFS, "templates/layouts/*.html")
	if err != nil {
		return nil, err
	}

	pages, err := fs.Sub(pageFS, "templates/pages")
	if err != nil {
		return nil, err
	}

	return &TemplateSet{
		layouts:  layouts,
		pages:    pages,
		basePath: basePath,
		nav:      nav,
		toasts:   toasts,
	}, nil
}

// Path prefixes an absolute console path with the mount point.
func (ts *TemplateSet) Path(p string) string {
	return joinPath(ts.basePath, p)
}

// Page parses the named page against a copy of the layout.
func (ts *TemplateSet) Page(name string) (*Page, error) {
	t, err := ts.layouts.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone layouts for %s: %w", name, err)
	}

	_, err = t.ParseFS(ts.pages, name)
	if err != nil {
		return nil, fmt.Errorf("parse template: %s: %w", name, err)
	}

	return &Page{name: name, set: ts, template: t}, nil
}

func (ts *TemplateSet) Assets() http.Handler {
	return http.FileServer(http.FS(assetFS))
}

type Page struct {
	name     string
	set      *TemplateSet
	template *template.Template
}

func (p *Page) Name() string {
	return p.name
}

func (p *Page) Render(w http.ResponseWriter, status int, data PageData) error {
	data.BasePath = p.set.basePath
	data.Nav = p.set.nav
	data.Toasts = p.set.toasts

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return p.template.ExecuteTemplate(w, LayoutTemplate, data)
}

func funcs(basePath string) template.FuncMap {
	return template.FuncMap{
		"path": func(p string) string {
			return joinPath(basePath, p)
		},
		"timestamp": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Local().Format(timestampLayout)
		},
		"millis": func(t time.Time) int64 {
			return t.UnixMilli()
		},
	}
}

func joinPath(basePath, p string) string {
	if basePath == "" {
		return p
	}
	return path.Join(basePath, p)
}
