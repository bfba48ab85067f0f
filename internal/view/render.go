package view

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Render writes the page for s as HTML.
func Render(w io.Writer, s State) error {
	return pageTemplate.ExecuteTemplate(w, "index.html", s)
}
