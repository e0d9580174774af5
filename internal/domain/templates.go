package domain

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// runTemplateData is the superset of fields referenced by the run templates.
type runTemplateData struct {
	SimulationType   string
	SimYears         int
	PassFile         string
	CombinedPassFile string
	LossFile         string
	WaterFile        string
	EventFile        string
	CropFile         string
	YieldFile        string
	PlotFile         string
	Management       string
	Slope            string
	Climate          string
	Soil             string
	Structure        string
	Channel          string
	Impoundment      string
	HillslopeCount   int
	HillslopesBlock  string
}

var loadTemplates = sync.OnceValues(func() (map[string]*template.Template, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	templates := make(map[string]*template.Template, len(entries))

	for _, entry := range entries {
		raw, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Option("missingkey=error").Parse(stripTemplateComments(string(raw)))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", entry.Name(), err)
		}

		templates[entry.Name()] = tmpl
	}

	return templates, nil
})

// stripTemplateComments drops everything after '#' on each line and trims the
// remainder. The simulator reads one answer per line.
func stripTemplateComments(raw string) string {
	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}

		lines[i] = strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n")
}

func renderRunTemplate(name string, data runTemplateData) (string, error) {
	templates, err := loadTemplates()
	if err != nil {
		return "", err
	}

	tmpl, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("run template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}

	return buf.String() + "\n", nil
}
