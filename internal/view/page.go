package view

import (
	"embed"
	"html/template"
	"io"
)

// Screens.
const (
	ScreenAuth  = "auth"
	ScreenNotes = "notes"
)

// PageTemplate is the name of the root template.
const PageTemplate = "page"

//go:embed templates/*.html
var templateFS embed.FS

// Page is everything the root template needs.
type Page struct {
	Title  string
	Screen string
	Cards  []Card
	Alerts []string
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("notes-client").ParseFS(templateFS, "templates/*.html")
}

// Render executes the root template for page.
func Render(w io.Writer, t *template.Template, page Page) error {
	return t.ExecuteTemplate(w, PageTemplate, page)
}
