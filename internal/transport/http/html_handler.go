package http

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; max-width: 960px; }
        section { border: 1px solid #ddd; border-radius: 4px; padding: 16px; margin: 16px 0; }
        label { display: block; margin: 8px 0 2px; }
        input[type=text] { width: 320px; }
        code { background: #f4f4f4; padding: 2px 4px; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <p>Upload an XLSX workbook to any endpoint below. Results are returned as a download;
    add <code>?format=csv</code> or <code>?format=parquet</code> instead of XLSX.</p>
{{range .Endpoints}}
    <section>
        <h2>{{.Title}}</h2>
        <p>{{.Description}} <code>POST {{.Path}}</code></p>
        <form action="{{.Path}}" method="post" enctype="multipart/form-data">
            <label>Workbook <input type="file" name="file" accept=".xlsx" required></label>
{{- range .Fields}}
            <label>{{.Label}} <input type="text" name="{{.Name}}" placeholder="{{.Placeholder}}" required></label>
{{- end}}
            <p><button type="submit">Run</button></p>
        </form>
    </section>
{{end}}
    <h2>Service</h2>
    <ul>
        <li><a href="/api/health">Health</a></li>
        <li><a href="/api/version">Version</a></li>
        <li><a href="/metrics">Metrics</a></li>
    </ul>
</body>
</html>
`))

type indexPage struct {
	Title     string
	Endpoints []Endpoint
}

// ServeIndexPage serves the page listing every screening endpoint with an
// upload form for each
func ServeIndexPage(title string, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := indexTemplate.Execute(&buf, indexPage{Title: title, Endpoints: Endpoints}); err != nil {
			logger.ErrorContext(r.Context(), "index page render failed", slog.String("error", err.Error()))
			http.Error(w, "Error rendering page", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}
