package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/rovshanmuradov/inbeef/internal/branding"
	"github.com/rovshanmuradov/inbeef/internal/report"
	"github.com/rovshanmuradov/inbeef/internal/simulation"
)

// PageTitle heads every HTML screen. The PDF keeps report.ReportTitle.
const PageTitle = "Simulador Comparativo Inbra"

//go:embed templates/*.html
var templateFS embed.FS

// pages renders the HTML screens with the branding baked in.
type pages struct {
	tmpl       *template.Template
	stylesheet template.CSS
	logo       template.URL
}

func newPages(assets branding.Assets) (*pages, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &pages{
		tmpl: tmpl,
		// Branding files are operator-supplied and trusted.
		stylesheet: template.CSS(assets.Stylesheet),
		logo:       template.URL(assets.LogoDataURI()),
	}, nil
}

type fieldView struct {
	Key       string
	Label     string
	Help      string
	Unit      string
	InputMode string
	Value     string
	Error     string
}

type pageView struct {
	Title      string
	Subtitle   string
	Stylesheet template.CSS
	Logo       template.URL

	// Form
	Fields []fieldView
	Error  string

	// Results
	Left           []report.Line
	Right          []report.Line
	Interpretation string
	Disclaimer     string
	ReportURL      string
	EditURL        string
}

func formFields(values, errs map[string]string) []fieldView {
	fields := make([]fieldView, 0, len(simulation.Fields))
	for _, f := range simulation.Fields {
		mode := "decimal"
		if f.Integer {
			mode = "numeric"
		}
		fields = append(fields, fieldView{
			Key:       f.Key,
			Label:     f.Label,
			Help:      f.Help,
			Unit:      f.Unit,
			InputMode: mode,
			Value:     values[f.Key],
			Error:     errs[f.Key],
		})
	}
	return fields
}

// execute renders the named page into memory so a template failure never
// leaves a half-written response.
func (p *pages) execute(name string, view pageView) ([]byte, error) {
	view.Title = PageTitle
	view.Subtitle = report.ReportSubtitle
	view.Stylesheet = p.stylesheet
	view.Logo = p.logo

	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, view); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
