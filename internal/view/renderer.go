// Package view adapts html/template to echo's Renderer interface.  The
// templates are opaque: handlers hand each one a fixed set of named
// variables and never inspect the produced markup.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

// Renderer renders the embedded templates of one application.  Each app
// binary parses only its own template directory, so template names stay
// short ("index.html", "edit.html") without colliding across apps.
type Renderer struct {
	t *template.Template
}

// New parses the templates of the named app (books, cafes, movies, login).
// Parsing happens once at startup; a malformed template is a programming
// error and panics immediately rather than at first render.
func New(app string) *Renderer {
	return &Renderer{
		t: template.Must(template.ParseFS(templateFS, "templates/"+app+"/*.html")),
	}
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.t.ExecuteTemplate(w, name, data)
}
