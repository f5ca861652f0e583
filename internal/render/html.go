// SPDX-License-Identifier: Apache-2.0

package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/medtrack/medtrack/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTMLRenderer is the html/template-backed implementation of [Renderer].
// All templates are parsed once at construction and embedded in the binary.
type HTMLRenderer struct {
	templates *template.Template
	logger    *logger.Logger
}

// NewHTMLRenderer parses the embedded templates and returns a ready renderer.
func NewHTMLRenderer(log *logger.Logger) (*HTMLRenderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		log.Err(err).Msg("error parsing embedded templates")
		return nil, fmt.Errorf("error parsing embedded templates: %w", err)
	}

	log.Info().Msg("html renderer created")
	return &HTMLRenderer{
		templates: templates,
		logger:    log,
	}, nil
}

// Render executes the named page template with data.
func (r *HTMLRenderer) Render(w io.Writer, name string, data any) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("error rendering template %q: %w", name, err)
	}

	return nil
}
