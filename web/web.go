// Package web embeds the console's HTML templates and its single stylesheet.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template. Each file is addressable by its base name
// ("page.tmpl", "home.tmpl", "error.tmpl").
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.tmpl")
}

// Static serves the embedded static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
