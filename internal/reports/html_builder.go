package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"impactcast/internal/config"
)

// HTMLBuilder handles HTML generation with goldmark
type HTMLBuilder struct {
	templateLoader *TemplateLoader
	goldmark       goldmark.Markdown
}

// NewHTMLBuilder creates an HTML builder
func NewHTMLBuilder() *HTMLBuilder {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(), // Allow raw HTML in markdown
		),
	)

	return &HTMLBuilder{
		templateLoader: NewTemplateLoader(),
		goldmark:       md,
	}
}

// TemplateData represents the data structure for the report HTML template
type TemplateData struct {
	Date        string
	GeneratedAt string
	Content     template.HTML
	Version     string
	EChartsTag  template.HTML
}

// ChartTemplateData holds the embeddable chart fragments substituted into
// the converted markdown body.
type ChartTemplateData struct {
	MagnitudeGauge  template.HTML
	EnergyChart     template.HTML
	DeflectionChart template.HTML
}

func toHTML(s string) template.HTML {
	return template.HTML(s)
}

// ConvertMarkdownToHTML converts markdown to HTML using goldmark
func (h *HTMLBuilder) ConvertMarkdownToHTML(markdownContent string) (string, error) {
	var buf bytes.Buffer
	if err := h.goldmark.Convert([]byte(markdownContent), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// ProcessMarkdownWithPlaceholders converts the markdown body to HTML and
// substitutes the chart placeholders it carries.
func (h *HTMLBuilder) ProcessMarkdownWithPlaceholders(markdownContent string, chartData *ChartTemplateData) (string, error) {
	htmlContent, err := h.ConvertMarkdownToHTML(markdownContent)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("content").Parse(htmlContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse content template: %w", err)
	}

	if chartData == nil {
		chartData = &ChartTemplateData{}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, chartData); err != nil {
		return "", fmt.Errorf("failed to execute content template: %w", err)
	}

	return buf.String(), nil
}

// BuildCompleteHTML wraps the processed report body in the full HTML page.
func (h *HTMLBuilder) BuildCompleteHTML(processedHTMLContent string, generatedAt time.Time, echartsTag string) (string, error) {
	templateData := TemplateData{
		Date:        generatedAt.Format("2006-01-02"),
		GeneratedAt: generatedAt.Format("2006-01-02 15:04:05 UTC"),
		Content:     template.HTML(processedHTMLContent),
		Version:     config.GetVersion(),
		EChartsTag:  template.HTML(echartsTag),
	}

	htmlTemplate, err := h.templateLoader.LoadHTMLTemplate()
	if err != nil {
		return "", fmt.Errorf("failed to load HTML template: %w", err)
	}

	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
