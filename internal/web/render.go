package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/pranjal299/portfolio/internal/content"
	"github.com/pranjal299/portfolio/internal/icons"
	"github.com/pranjal299/portfolio/internal/page"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"icon": iconHTML,
}

// iconHTML emits a Lucide placeholder the browser script expands.
func iconHTML(i icons.Icon) template.HTML {
	name := template.HTMLEscapeString(icons.LucideNameOrDefault(i))
	return template.HTML(fmt.Sprintf(`<i data-lucide="%s" aria-hidden="true"></i>`, name))
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func staticAssets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded above; Sub only fails on invalid names.
		panic(err)
	}
	return sub
}

// indexData is the full-page view model.
type indexData struct {
	page.View
	CallToAction string
}

func newIndexData(v page.View) indexData {
	return indexData{View: v, CallToAction: content.HeroCallToAction}
}
