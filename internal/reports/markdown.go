package reports

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"impactcast/internal/fetchers"
	"impactcast/internal/models"
)

// BuildMarkdown assembles the markdown body of an impact report from one
// simulation response, its narrative paragraph, optional LLM commentary and
// optional news headlines. Chart placeholders ({{.MagnitudeGauge}},
// {{.DeflectionChart}}) are substituted later during HTML assembly.
func BuildMarkdown(resp *models.SimulationResponse, story, commentary string, headlines []fetchers.Headline, chartFiles []string, generatedAt time.Time) string {
	var buf strings.Builder

	buf.WriteString("# Asteroid Impact Consequence Report\n\n")
	buf.WriteString(fmt.Sprintf("Generated: %s\n\n", generatedAt.Format("2006-01-02 15:04:05 UTC")))

	buf.WriteString("## Scenario\n\n")
	buf.WriteString("| Parameter | Value |\n")
	buf.WriteString("|---|---|\n")
	buf.WriteString(fmt.Sprintf("| Diameter | %.1f m |\n", resp.Input.DiameterM))
	buf.WriteString(fmt.Sprintf("| Velocity | %.1f m/s |\n", resp.Input.VelocityMS))
	buf.WriteString(fmt.Sprintf("| Density | %.1f kg/m³ |\n", resp.Input.DensityKgM3))
	buf.WriteString(fmt.Sprintf("| Deflection Δv | %.1f m/s |\n", resp.Input.DeflectionMS))
	buf.WriteString(fmt.Sprintf("| Water depth | %.1f m |\n", resp.Input.WaterDepthM))
	if resp.Input.ImpactLat != nil && resp.Input.ImpactLon != nil {
		buf.WriteString(fmt.Sprintf("| Impact location | (%.3f, %.3f) |\n", *resp.Input.ImpactLat, *resp.Input.ImpactLon))
	}
	buf.WriteString("\n")

	buf.WriteString("## Estimated Consequences\n\n")
	buf.WriteString("| Estimate | Value |\n")
	buf.WriteString("|---|---|\n")
	buf.WriteString(fmt.Sprintf("| Mass | %.4g kg |\n", resp.Results.MassKg))
	buf.WriteString(fmt.Sprintf("| Kinetic energy | %.4g J |\n", resp.Results.EnergyJoules))
	buf.WriteString(fmt.Sprintf("| TNT equivalent | %.2f Mt |\n", resp.Results.TNTMegatons))
	buf.WriteString(fmt.Sprintf("| Crater diameter | %.2f km |\n", resp.Results.CraterDiameterM/1000.0))
	buf.WriteString(fmt.Sprintf("| Seismic magnitude (Mw) | %.2f |\n", resp.Results.SeismicMwEquivalent))
	buf.WriteString(fmt.Sprintf("| Tsunami wave height | %.2f m |\n", resp.Results.TsunamiInitialHeightM))
	buf.WriteString(fmt.Sprintf("| Tsunami radius | %.0f km |\n", resp.Results.TsunamiRadiusKm))
	buf.WriteString("\n")

	buf.WriteString("## Narrative\n\n")
	buf.WriteString(story)
	buf.WriteString("\n\n")

	buf.WriteString("## Seismic Severity\n\n")
	buf.WriteString("{{.MagnitudeGauge}}\n\n")

	buf.WriteString("## Energy Comparison\n\n")
	buf.WriteString("{{.EnergyChart}}\n\n")

	buf.WriteString("## Deflection Sensitivity\n\n")
	buf.WriteString("{{.DeflectionChart}}\n\n")

	if len(chartFiles) > 0 {
		buf.WriteString("## Charts\n\n")
		for _, file := range chartFiles {
			name := filepath.Base(file)
			title := chartTitle(name)
			buf.WriteString(fmt.Sprintf("![%s](%s)\n\n", title, name))
		}
	}

	if commentary != "" {
		buf.WriteString("## Commentary\n\n")
		buf.WriteString(commentary)
		buf.WriteString("\n\n")
	}

	if len(headlines) > 0 {
		buf.WriteString("## NASA News\n\n")
		for _, h := range headlines {
			if h.Published != "" {
				buf.WriteString(fmt.Sprintf("- [%s](%s) (%s)\n", h.Title, h.Link, h.Published))
			} else {
				buf.WriteString(fmt.Sprintf("- [%s](%s)\n", h.Title, h.Link))
			}
		}
		buf.WriteString("\n")
	}

	if resp.Notes != "" {
		buf.WriteString(fmt.Sprintf("> %s\n", resp.Notes))
	}

	return buf.String()
}

func chartTitle(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.ReplaceAll(name, "_", " ")
	if name == "" {
		return filename
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
