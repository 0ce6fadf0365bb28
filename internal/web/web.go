// Package web holds the HTML templates for every view. They are embedded in
// the binary; each view is a named template matching its route.View value.
package web

import (
	"embed"         // Compiled-in template files
	"fmt"           // Number formatting helpers
	"html/template" // Contextual escaping

	"worldsporta/internal/domain" // Avatar initials

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var files embed.FS

// Funcs are the helpers available inside templates
var Funcs = template.FuncMap{
	"price":   func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"pct":     func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"initial": func(name string) string { return domain.User{Username: name}.Initial() },
}

// Templates parses every embedded template
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return t, nil
}
