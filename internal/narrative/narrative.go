package narrative

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"impactcast/internal/models"
)

// ErrMissingField indicates a required numeric result field was absent
// from a story request.
var ErrMissingField = errors.New("missing result field")

// Formatter renders a simulation result as a single narrative paragraph.
// It is stateless; every call is independent.
type Formatter struct{}

// NewFormatter creates a narrative formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Describe produces the narrative paragraph for a set of results. The
// location clause appears only when both coordinates are present and
// non-zero. A missing crater diameter is treated as 0; the other result
// fields are required.
func (f *Formatter) Describe(results models.StoryResults, lat, lon *float64) (string, error) {
	if results.TNTMegatons == nil {
		return "", fmt.Errorf("%w: tnt_megatons", ErrMissingField)
	}
	if results.SeismicMwEquivalent == nil {
		return "", fmt.Errorf("%w: seismic_mw_equivalent", ErrMissingField)
	}
	if results.TsunamiInitialHeightM == nil {
		return "", fmt.Errorf("%w: tsunami_initial_height_m", ErrMissingField)
	}
	if results.TsunamiRadiusKm == nil {
		return "", fmt.Errorf("%w: tsunami_radius_km", ErrMissingField)
	}

	craterKm := 0.0
	if results.CraterDiameterM != nil {
		craterKm = *results.CraterDiameterM / 1000.0
	}

	locationText := ""
	if lat != nil && lon != nil && *lat != 0 && *lon != 0 {
		locationText = fmt.Sprintf(" at (%.3f, %.3f)", *lat, *lon)
	}

	return fmt.Sprintf(
		"Impact simulation%s: The asteroid would release approximately "+
			"%s megatons of TNT equivalent, producing an estimated crater about "+
			"%.2f km in diameter. The impact energy corresponds roughly to an earthquake "+
			"of magnitude %.2f. If the impact occurs in water, our heuristic predicts an initial "+
			"tsunami wave of about %.2f meters and potential coastal effects out to roughly "+
			"%.0f km from the source. These results are approximate and intended for "+
			"education/demonstration only.",
		locationText,
		formatThousands(*results.TNTMegatons),
		craterKm,
		*results.SeismicMwEquivalent,
		*results.TsunamiInitialHeightM,
		*results.TsunamiRadiusKm,
	), nil
}

// DescribeResult is Describe for a fully computed ImpactResult.
func (f *Formatter) DescribeResult(result models.ImpactResult, lat, lon *float64) (string, error) {
	return f.Describe(models.FromImpactResult(result), lat, lon)
}

// formatThousands formats a value with two decimals and comma-grouped
// integer digits, e.g. 1234567.891 -> "1,234,567.89".
func formatThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
