package charts

import (
	"math"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"impactcast/internal/models"
)

// generateTsunamiAttenuationChart plots the heuristic decay of the initial
// wave height out to the estimated tsunami radius.
func (cg *ChartGenerator) generateTsunamiAttenuationChart(results *models.ImpactResult) (string, error) {
	filename := filepath.Join(cg.outputDir, "tsunami_attenuation.png")

	radius := results.TsunamiRadiusKm
	if radius < 10 {
		radius = 10
	}

	const points = 50
	xValues := make([]float64, points)
	yValues := make([]float64, points)
	for i := 0; i < points; i++ {
		d := radius * float64(i) / float64(points-1)
		xValues[i] = d
		// Inverse-distance decay of the initial height, display heuristic only
		yValues[i] = results.TsunamiInitialHeightM / (1.0 + d/100.0)
	}

	graph := chart.Chart{
		Title: "Tsunami Wave Height vs Distance",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   80,
				Right:  50,
				Bottom: 50,
			},
			FillColor: drawing.Color{R: 248, G: 249, B: 250, A: 255},
		},
		Height: 400,
		Width:  700,
		XAxis: chart.XAxis{
			Name: "Distance from source (km)",
		},
		YAxis: chart.YAxis{
			Name: "Wave height (m)",
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: math.Max(1, results.TsunamiInitialHeightM*1.1),
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Wave height",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 0, G: 116, B: 217, A: 255},
					StrokeWidth: 2.5,
				},
			},
		},
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", err
	}

	return filename, nil
}
