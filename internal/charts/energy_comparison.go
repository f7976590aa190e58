package charts

import (
	"math"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"impactcast/internal/models"
)

// ReferenceYield is a well-known event used for yield scale context.
type ReferenceYield struct {
	Label    string
	Kilotons float64
}

// ReferenceYields lists the events impact yields are compared against.
var ReferenceYields = []ReferenceYield{
	{"Hiroshima", 15},
	{"Tunguska", 12000},
	{"Tsar Bomba", 50000},
	{"Chicxulub", 1e11},
}

// generateEnergyComparisonChart creates a bar chart comparing the impact
// yield with reference events on a log10(kilotons) scale.
func (cg *ChartGenerator) generateEnergyComparisonChart(results *models.ImpactResult) (string, error) {
	filename := filepath.Join(cg.outputDir, "energy_comparison.png")

	impactKt := results.TNTMegatons * 1000.0

	bars := []chart.Value{
		{Value: logScaleKt(impactKt), Label: "This impact", Style: chart.Style{
			FillColor:   drawing.Color{R: 220, G: 53, B: 69, A: 255},
			StrokeColor: drawing.Color{R: 220, G: 53, B: 69, A: 255},
		}},
	}
	for _, ref := range ReferenceYields {
		bars = append(bars, chart.Value{Value: logScaleKt(ref.Kilotons), Label: ref.Label})
	}

	graph := chart.BarChart{
		Title: "Released Energy vs Reference Events",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   80,
				Right:  50,
				Bottom: 60,
			},
			FillColor: drawing.Color{R: 248, G: 249, B: 250, A: 255},
		},
		Height:   400,
		Width:    700,
		BarWidth: 80,
		YAxis: chart.YAxis{
			Name: "log10(yield, kt TNT)",
			Style: chart.Style{
				FontSize: 12,
			},
		},
		Bars: bars,
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

// logScaleKt maps a yield in kilotons onto a log10 scale, flooring at 1 kt
// so sub-kiloton yields still render as a visible bar.
func logScaleKt(kt float64) float64 {
	return math.Log10(math.Max(1.0, kt))
}
