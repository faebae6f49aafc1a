// Package views holds the HTML templates rendered by the page controllers.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
)

//go:embed templates/*.html
var files embed.FS

// FuncMap is available in every template
var FuncMap = template.FuncMap{
	"pathEscape": url.PathEscape,
	"exportURL": ExportURL,
}

// Templates parses every embedded page. Each page is addressed by its file name,
// e.g. "view_records.html".
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(FuncMap).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// ExportURL links to the download of the records selected by query in the given
// export type.
func ExportURL(query url.Values, exportType string) template.URL {
	q := url.Values{}
	for k, v := range query {
		if k != "type" {
			q[k] = v
		}
	}
	q.Set("type", exportType)
	return template.URL("/export_placements?" + q.Encode())
}
