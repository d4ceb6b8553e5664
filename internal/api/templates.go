package api

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/lox/lightage/internal/chart"
)

//go:embed templates/*
var templateFS embed.FS

// newTemplates parses the HTML templates with the page's helper functions.
func newTemplates() *template.Template {
	funcs := template.FuncMap{
		// px formats an SVG coordinate.
		"px": func(f float64) string {
			return fmt.Sprintf("%.1f", f)
		},
		"deg": func(f float64) string {
			return fmt.Sprintf("%.2f", f)
		},
		"num": chart.FormatNumber,
		"half": func(f float64) float64 {
			return f / 2
		},
		"mid": func(n int) float64 {
			return float64(n) / 2
		},
		"center": func(a, b float64) float64 {
			return (a + b) / 2
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
