package site

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// pageTemplate is parsed once at start-up; a broken template is a build defect.
var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// FS returns an http.FileSystem for the embedded stylesheets.
func FS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return http.FS(staticFS)
	}
	return http.FS(sub)
}
