// Package cms implements the content-management backend: entity models,
// the concurrent in-memory store, and the HTTP surface (admin console,
// public pages, JSON API).
package cms

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the envelope passed to every page template.
type PageData struct {
	Title   string // <title> tag
	Section string // active nav item
	Data    any    // page-specific payload
}

// Renderer parses the embedded page templates once and executes them on
// demand. Each page is paired with its layout (admin or public) based on
// the template name prefix.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"fmtDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"fmtPrice": func(d decimal.Decimal) string {
			return "$" + d.StringFixed(2)
		},
		"activeClass": func(current, target string) string {
			if current == target {
				return "active"
			}
			return ""
		},
	}

	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, page := range pages {
		name := strings.TrimSuffix(path.Base(page), ".html")
		if strings.HasSuffix(name, "_layout") {
			continue
		}

		layout := "templates/public_layout.html"
		if strings.HasPrefix(name, "admin_") {
			layout = "templates/admin_layout.html"
		}

		t, err := template.New(path.Base(layout)).Funcs(funcs).ParseFS(templateFS, layout, page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = t
	}

	return r, nil
}

// Page executes the named page template into a buffer first, so a
// template error never leaves a half-written response body.
func (r *Renderer) Page(w http.ResponseWriter, status int, name string, data PageData) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
