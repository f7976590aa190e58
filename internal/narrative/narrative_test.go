package narrative

import (
	"errors"
	"strings"
	"testing"

	"impactcast/internal/models"
)

func fptr(v float64) *float64 { return &v }

func scenarioResults() models.StoryResults {
	return models.StoryResults{
		TNTMegatons:           fptr(9.3857),
		CraterDiameterM:       fptr(23788.0),
		SeismicMwEquivalent:   fptr(7.88),
		TsunamiInitialHeightM: fptr(1.25),
		TsunamiRadiusKm:       fptr(175.1),
	}
}

func TestDescribeWithLocation(t *testing.T) {
	f := NewFormatter()

	story, err := f.Describe(scenarioResults(), fptr(10.123), fptr(-20.456))
	if err != nil {
		t.Fatalf("Describe() returned error: %v", err)
	}

	if !strings.HasPrefix(story, "Impact simulation at (10.123, -20.456): ") {
		t.Errorf("unexpected prefix: %q", story[:60])
	}
	if !strings.Contains(story, "9.39 megatons of TNT equivalent") {
		t.Errorf("TNT clause missing or misformatted: %q", story)
	}
	if !strings.Contains(story, "about 23.79 km in diameter") {
		t.Errorf("crater clause missing or misformatted: %q", story)
	}
	if !strings.Contains(story, "magnitude 7.88") {
		t.Errorf("magnitude clause missing: %q", story)
	}
	if !strings.Contains(story, "wave of about 1.25 meters") {
		t.Errorf("tsunami height clause missing: %q", story)
	}
	if !strings.Contains(story, "roughly 175 km from the source") {
		t.Errorf("tsunami radius clause missing: %q", story)
	}
}

func TestDescribeWithoutLocation(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name string
		lat  *float64
		lon  *float64
	}{
		{"both nil", nil, nil},
		{"only lat", fptr(10.0), nil},
		{"only lon", nil, fptr(-20.0)},
		{"zero lat", fptr(0), fptr(-20.0)},
		{"zero lon", fptr(10.0), fptr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			story, err := f.Describe(scenarioResults(), tt.lat, tt.lon)
			if err != nil {
				t.Fatalf("Describe() returned error: %v", err)
			}
			if !strings.HasPrefix(story, "Impact simulation: ") {
				t.Errorf("expected location clause omitted, got: %q", story[:40])
			}
			if strings.Contains(story, "at (") {
				t.Errorf("stray location clause in: %q", story)
			}
		})
	}
}

func TestDescribeMissingFields(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name   string
		mutate func(*models.StoryResults)
	}{
		{"no tnt", func(r *models.StoryResults) { r.TNTMegatons = nil }},
		{"no magnitude", func(r *models.StoryResults) { r.SeismicMwEquivalent = nil }},
		{"no tsunami height", func(r *models.StoryResults) { r.TsunamiInitialHeightM = nil }},
		{"no tsunami radius", func(r *models.StoryResults) { r.TsunamiRadiusKm = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := scenarioResults()
			tt.mutate(&results)
			_, err := f.Describe(results, nil, nil)
			if !errors.Is(err, ErrMissingField) {
				t.Errorf("expected ErrMissingField, got %v", err)
			}
		})
	}
}

func TestDescribeMissingCraterDefaultsToZero(t *testing.T) {
	f := NewFormatter()

	results := scenarioResults()
	results.CraterDiameterM = nil

	story, err := f.Describe(results, nil, nil)
	if err != nil {
		t.Fatalf("Describe() returned error: %v", err)
	}
	if !strings.Contains(story, "about 0.00 km in diameter") {
		t.Errorf("expected zero crater clause, got: %q", story)
	}
}

func TestDescribeResult(t *testing.T) {
	f := NewFormatter()

	story, err := f.DescribeResult(models.ImpactResult{
		TNTMegatons:           1234567.891,
		CraterDiameterM:       100000,
		SeismicMwEquivalent:   9.1,
		TsunamiInitialHeightM: 200,
		TsunamiRadiusKm:       5000,
	}, nil, nil)
	if err != nil {
		t.Fatalf("DescribeResult() returned error: %v", err)
	}
	if !strings.Contains(story, "1,234,567.89 megatons") {
		t.Errorf("thousands separator missing: %q", story)
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0.00"},
		{9.3857, "9.39"},
		{999.999, "1,000.00"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{-1234.5, "-1,234.50"},
	}

	for _, tt := range tests {
		if got := formatThousands(tt.input); got != tt.expected {
			t.Errorf("formatThousands(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
