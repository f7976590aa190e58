package charts

import (
	"fmt"

	"impactcast/internal/models"
)

// ChartGenerator handles creation of static chart images for reports
type ChartGenerator struct {
	outputDir string
}

// NewChartGenerator creates a chart generator writing PNG files to outputDir
func NewChartGenerator(outputDir string) *ChartGenerator {
	return &ChartGenerator{
		outputDir: outputDir,
	}
}

// GenerateCharts creates all chart images for one simulation response and
// returns the list of generated file paths. A failed chart is skipped
// rather than failing the report.
func (cg *ChartGenerator) GenerateCharts(resp *models.SimulationResponse) ([]string, error) {
	if resp == nil {
		return nil, fmt.Errorf("simulation response cannot be nil")
	}

	var chartFiles []string

	if energyChart, err := cg.generateEnergyComparisonChart(&resp.Results); err == nil {
		chartFiles = append(chartFiles, energyChart)
	}

	if tsunamiChart, err := cg.generateTsunamiAttenuationChart(&resp.Results); err == nil {
		chartFiles = append(chartFiles, tsunamiChart)
	}

	return chartFiles, nil
}

// GenerateEnergyComparisonChart creates the yield comparison chart
// (exported for testing)
func (cg *ChartGenerator) GenerateEnergyComparisonChart(results *models.ImpactResult) (string, error) {
	return cg.generateEnergyComparisonChart(results)
}
