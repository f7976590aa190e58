package reports

import (
	"os"
	"path/filepath"
)

// TemplateLoader handles loading the report HTML template
type TemplateLoader struct{}

// NewTemplateLoader creates a new template loader
func NewTemplateLoader() *TemplateLoader {
	return &TemplateLoader{}
}

// LoadHTMLTemplate loads the report template from file, falling back to the
// built-in template when the file is not present (tests, stripped deploys).
func (t *TemplateLoader) LoadHTMLTemplate() (string, error) {
	templatePath := filepath.Join("internal", "templates", "report_template.html")
	content, err := os.ReadFile(templatePath)
	if err != nil {
		return defaultReportTemplate, nil
	}
	return string(content), nil
}

const defaultReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Asteroid Impact Report - {{.Date}}</title>
    {{.EChartsTag}}
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 1100px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f8f9fa;
        }
        .header {
            background: linear-gradient(135deg, #1f2a44 0%, #4b3b8f 100%);
            color: white;
            padding: 30px;
            border-radius: 10px;
            margin-bottom: 30px;
            text-align: center;
        }
        .header h1 { margin: 0; font-size: 2.2em; }
        .header .timestamp { opacity: 0.9; margin-top: 10px; }
        .content {
            background: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            margin-bottom: 30px;
        }
        h1, h2, h3 { color: #333; }
        h2 { border-bottom: 2px solid #4b3b8f; padding-bottom: 5px; }
        table { border-collapse: collapse; width: 100%; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 10px; text-align: left; }
        th { background-color: #f8f9fa; font-weight: bold; }
        img { max-width: 100%; height: auto; }
        blockquote { border-left: 4px solid #4b3b8f; margin: 0; padding-left: 20px; color: #666; }
        .footer { text-align: center; color: #666; font-size: 0.9em; margin-top: 30px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>☄️ Asteroid Impact Report</h1>
        <div class="timestamp">Generated: {{.GeneratedAt}}</div>
    </div>

    <div class="content">
        {{.Content}}
    </div>

    <div class="footer">
        <p>ImpactCast v{{.Version}} | Catalog data: NASA NeoWs | All estimates are rough heuristics</p>
    </div>
</body>
</html>`
