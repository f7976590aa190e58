package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"impactcast/internal/charts"
	"impactcast/internal/fetchers"
	"impactcast/internal/logger"
	"impactcast/internal/models"
	"impactcast/internal/storage"
)

const newsHeadlineLimit = 5

// CommentaryProvider generates optional plain-language commentary for a
// simulation response.
type CommentaryProvider interface {
	GenerateCommentary(ctx context.Context, resp *models.SimulationResponse) (string, error)
}

// HeadlinesProvider supplies recent news headlines for report context.
type HeadlinesProvider interface {
	FetchHeadlines(ctx context.Context, limit int) ([]fetchers.Headline, error)
}

// Generator orchestrates report generation: charts, markdown, HTML assembly
// and persistence. Commentary and headlines are optional extras; their
// failure never fails the report.
type Generator struct {
	storage    storage.StorageClient
	commentary CommentaryProvider
	news       HeadlinesProvider
	log        *logger.Logger
}

// NewGenerator creates a report generator. commentary and news may be nil.
func NewGenerator(store storage.StorageClient, commentary CommentaryProvider, news HeadlinesProvider) *Generator {
	return &Generator{
		storage:    store,
		commentary: commentary,
		news:       news,
		log:        logger.GetGlobalLogger().WithComponent("reports"),
	}
}

// Generate builds a full report for one simulation response and stores its
// files. Returns the storage-relative path of the report index page.
func (g *Generator) Generate(ctx context.Context, resp *models.SimulationResponse, story string) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("simulation response is required")
	}

	timestamp := time.Now().UTC()
	folderPath := storage.GenerateReportFolderPath(timestamp)
	g.log.Info("Starting report generation", map[string]interface{}{"folder": folderPath})

	tempDir, err := os.MkdirTemp("", "impactcast_report_")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	chartGen := charts.NewChartGenerator(tempDir)
	chartFiles, err := chartGen.GenerateCharts(resp)
	if err != nil {
		g.log.Warn("Chart generation failed", map[string]interface{}{"error": err.Error()})
		chartFiles = nil
	}

	commentary := g.fetchCommentary(ctx, resp)
	headlines := g.fetchHeadlines(ctx)

	markdown := BuildMarkdown(resp, story, commentary, headlines, chartFiles, timestamp)

	chartData := g.buildChartData(chartGen, resp)

	builder := NewHTMLBuilder()
	processed, err := builder.ProcessMarkdownWithPlaceholders(markdown, chartData)
	if err != nil {
		return "", fmt.Errorf("failed to process markdown: %w", err)
	}

	finalHTML, err := builder.BuildCompleteHTML(processed, timestamp, charts.EChartsCDNTag)
	if err != nil {
		return "", fmt.Errorf("failed to build HTML: %w", err)
	}

	if err := g.storeFiles(ctx, timestamp, finalHTML, markdown, resp, chartFiles); err != nil {
		return "", err
	}

	indexPath := folderPath + "/index.html"
	g.log.Info("Report generated", map[string]interface{}{"path": indexPath})
	return indexPath, nil
}

// buildChartData renders the interactive chart fragments embedded in the
// report body. Each fragment degrades to empty on failure.
func (g *Generator) buildChartData(chartGen *charts.ChartGenerator, resp *models.SimulationResponse) *ChartTemplateData {
	chartData := &ChartTemplateData{}

	if gauge, err := chartGen.GenerateMagnitudeGaugeSnippet(&resp.Results); err == nil {
		chartData.MagnitudeGauge = toHTML(gauge.HTML)
	} else {
		g.log.Warn("Magnitude gauge generation failed", map[string]interface{}{"error": err.Error()})
	}

	if energy, err := GenerateEnergyBarChart(&resp.Results); err == nil {
		chartData.EnergyChart = toHTML(energy)
	} else {
		g.log.Warn("Energy chart generation failed", map[string]interface{}{"error": err.Error()})
	}

	if deflection, err := GenerateDeflectionChart(resp.Input); err == nil {
		chartData.DeflectionChart = toHTML(deflection)
	} else {
		g.log.Warn("Deflection chart generation failed", map[string]interface{}{"error": err.Error()})
	}

	return chartData
}

func (g *Generator) fetchCommentary(ctx context.Context, resp *models.SimulationResponse) string {
	if g.commentary == nil {
		return ""
	}
	commentary, err := g.commentary.GenerateCommentary(ctx, resp)
	if err != nil {
		g.log.Warn("Commentary generation failed", map[string]interface{}{"error": err.Error()})
		return ""
	}
	return commentary
}

func (g *Generator) fetchHeadlines(ctx context.Context) []fetchers.Headline {
	if g.news == nil {
		return nil
	}
	headlines, err := g.news.FetchHeadlines(ctx, newsHeadlineLimit)
	if err != nil {
		g.log.Warn("News fetch failed", map[string]interface{}{"error": err.Error()})
		return nil
	}
	return headlines
}

// storeFiles persists the report artifacts into the report folder.
func (g *Generator) storeFiles(ctx context.Context, timestamp time.Time, finalHTML, markdown string, resp *models.SimulationResponse, chartFiles []string) error {
	if err := g.storage.StoreFile(ctx, []byte(finalHTML), "index.html", timestamp); err != nil {
		return fmt.Errorf("failed to store report HTML: %w", err)
	}

	if err := g.storage.StoreFile(ctx, []byte(markdown), "report.md", timestamp); err != nil {
		g.log.Warn("Failed to store report markdown", map[string]interface{}{"error": err.Error()})
	}

	if data, err := json.MarshalIndent(resp, "", "  "); err == nil {
		if err := g.storage.StoreFile(ctx, data, "simulation.json", timestamp); err != nil {
			g.log.Warn("Failed to store simulation JSON", map[string]interface{}{"error": err.Error()})
		}
	}

	for _, file := range chartFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			g.log.Warn("Failed to read chart file", map[string]interface{}{"file": file, "error": err.Error()})
			continue
		}
		if err := g.storage.StoreFile(ctx, data, filepath.Base(file), timestamp); err != nil {
			g.log.Warn("Failed to store chart file", map[string]interface{}{"file": file, "error": err.Error()})
		}
	}

	return nil
}
