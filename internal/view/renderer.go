// internal/view/renderer.go

package view

import (
	"embed"
	"fmt"
	"io"

	"github.com/google/safehtml/template"
)

//go:embed templates/*
var templateFS embed.FS

// PageRenderer renders the dashboard page
type PageRenderer struct {
	dashboardTemplate *template.Template
}

// NewPageRenderer parses the embedded templates
func NewPageRenderer() (*PageRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	dashboardTemplate, err := template.New("dashboard.html").ParseFS(trustedFS, "templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}

	return &PageRenderer{
		dashboardTemplate: dashboardTemplate,
	}, nil
}

// Render writes the page for vm
func (r *PageRenderer) Render(w io.Writer, vm DashboardViewModel) error {
	return r.dashboardTemplate.Execute(w, vm)
}
