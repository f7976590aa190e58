package reports

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	impactcharts "impactcast/internal/charts"
	"impactcast/internal/models"
	"impactcast/internal/physics"
)

// GenerateEnergyBarChart renders an interactive bar chart comparing the
// released energy with reference events on a log10(kilotons) scale.
func GenerateEnergyBarChart(results *models.ImpactResult) (string, error) {
	if results == nil {
		return "", fmt.Errorf("results are required for energy chart")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Released Energy vs Reference Events",
			Subtitle: "log10 of yield in kilotons of TNT",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "log10(yield, kt TNT)",
		}),
	)

	xAxis := []string{"This impact"}
	barData := []opts.BarData{
		{Value: logKilotons(results.TNTMegatons * 1000.0)},
	}
	for _, ref := range impactcharts.ReferenceYields {
		xAxis = append(xAxis, ref.Label)
		barData = append(barData, opts.BarData{Value: logKilotons(ref.Kilotons)})
	}

	bar.SetXAxis(xAxis).
		AddSeries("Yield", barData)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// logKilotons floors at 1 kt so sub-kiloton yields still show a bar.
func logKilotons(kt float64) float64 {
	return math.Log10(math.Max(1.0, kt))
}

const deflectionChartSteps = 20

// GenerateDeflectionChart renders an interactive line chart showing how the
// TNT-equivalent yield falls off as the applied deflection Δv grows, for the
// object of the given simulation. Returns an embeddable HTML fragment.
func GenerateDeflectionChart(input models.ImpactInput) (string, error) {
	if input.VelocityMS <= 0 {
		return "", fmt.Errorf("velocity must be positive for deflection chart")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Deflection Sensitivity",
			Subtitle: "Remaining yield vs applied deflection Δv",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Deflection Δv (m/s)",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Yield (Mt TNT)",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: true,
		}),
	)

	mass := physics.SphereMass(input.DiameterM, input.DensityKgM3)

	xAxis := make([]string, 0, deflectionChartSteps+1)
	yieldData := make([]opts.LineData, 0, deflectionChartSteps+1)
	for i := 0; i <= deflectionChartSteps; i++ {
		deflection := input.VelocityMS * float64(i) / float64(deflectionChartSteps)
		remaining := input.VelocityMS - deflection
		if remaining < 0 {
			remaining = 0
		}
		megatons := physics.TNTEquivalentMegatons(physics.KineticEnergy(mass, remaining))

		xAxis = append(xAxis, fmt.Sprintf("%.0f", deflection))
		yieldData = append(yieldData, opts.LineData{Value: megatons})
	}

	line.SetXAxis(xAxis).
		AddSeries("Yield after deflection", yieldData).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
