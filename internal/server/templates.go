package server

import (
	"embed"
	"html/template"

	"github.com/amrtaher/portfolio/internal/reveal"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

var templateFuncs = template.FuncMap{
	// delay is the reveal stagger of the i-th child, in milliseconds.
	"delay": func(i int) int64 { return reveal.Delay(i).Milliseconds() },
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFiles, "templates/*.html")
}
