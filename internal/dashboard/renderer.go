package dashboard

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page template.
type Renderer struct {
	page *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page.html").
		Funcs(template.FuncMap{
			"num": formatNumber,
			"px":  formatPx,
		}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("dashboard: parse templates: %w", err)
	}
	return &Renderer{page: tmpl}, nil
}

// Render writes page as a complete HTML document. Nothing is written when
// the template fails.
func (r *Renderer) Render(w io.Writer, page *Page) error {
	var buf bytes.Buffer
	if err := r.page.Execute(&buf, page); err != nil {
		return fmt.Errorf("dashboard: render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// formatNumber prints v without trailing zeros, e.g. 40 or 30.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
