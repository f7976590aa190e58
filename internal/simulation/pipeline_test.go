package simulation

import (
	"context"
	"errors"
	"math"
	"testing"

	"impactcast/internal/models"
)

type fakeCatalog struct {
	neo *models.NEOLookupResponse
	err error
}

func (f *fakeCatalog) LookupNEO(ctx context.Context, id string) (*models.NEOLookupResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.neo, nil
}

func almostEqual(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

func TestSimulateReferenceImpact(t *testing.T) {
	p := NewPipeline(nil, nil)

	resp, err := p.Simulate(context.Background(), models.SimulationRequest{
		DiameterM:    50.0,
		VelocityMS:   20000.0,
		Density:      3000.0,
		WaterDepthM:  4000.0,
		DeflectionMS: 0.0,
	})
	if err != nil {
		t.Fatalf("Simulate() returned error: %v", err)
	}

	r := resp.Results
	if !almostEqual(r.MassKg, 1.9634954084936207e8, 1e-9) {
		t.Errorf("mass_kg = %v, expected ~1.9635e8", r.MassKg)
	}
	if !almostEqual(r.EnergyJoules, 3.9269908169872414e16, 1e-9) {
		t.Errorf("energy_joules = %v, expected ~3.927e16", r.EnergyJoules)
	}
	if !almostEqual(r.TNTMegatons, 9.3857, 1e-4) {
		t.Errorf("tnt_megatons = %v, expected ~9.39", r.TNTMegatons)
	}
	wantCrater := 0.07 * math.Cbrt(r.EnergyJoules)
	if !almostEqual(r.CraterDiameterM, wantCrater, 1e-12) {
		t.Errorf("crater_diameter_m = %v, expected %v", r.CraterDiameterM, wantCrater)
	}
	wantMw := (math.Log10(r.EnergyJoules) - 5.24) / 1.44
	if !almostEqual(r.SeismicMwEquivalent, wantMw, 1e-12) {
		t.Errorf("seismic_mw_equivalent = %v, expected %v", r.SeismicMwEquivalent, wantMw)
	}
	if r.TsunamiInitialHeightM < 0.01 || r.TsunamiInitialHeightM > 200 {
		t.Errorf("tsunami height %v outside clamp bounds", r.TsunamiInitialHeightM)
	}
	if r.TsunamiRadiusKm < 0 || r.TsunamiRadiusKm > 5000 {
		t.Errorf("tsunami radius %v outside clamp bounds", r.TsunamiRadiusKm)
	}
	if resp.Notes == "" {
		t.Error("expected notes on the response")
	}

	// Input echo is normalized
	if resp.Input.DiameterM != 50 || resp.Input.VelocityMS != 20000 {
		t.Errorf("unexpected input echo: %+v", resp.Input)
	}
}

func TestSimulateDeflectionExceedsVelocity(t *testing.T) {
	p := NewPipeline(nil, nil)

	resp, err := p.Simulate(context.Background(), models.SimulationRequest{
		DiameterM:    50.0,
		VelocityMS:   20000.0,
		Density:      3000.0,
		WaterDepthM:  4000.0,
		DeflectionMS: 25000.0,
	})
	if err != nil {
		t.Fatalf("Simulate() returned error: %v", err)
	}

	r := resp.Results
	if r.EnergyJoules != 0 {
		t.Errorf("energy_joules = %v, expected 0", r.EnergyJoules)
	}
	if r.TNTMegatons != 0 {
		t.Errorf("tnt_megatons = %v, expected 0", r.TNTMegatons)
	}
	if r.CraterDiameterM != 0 {
		t.Errorf("crater_diameter_m = %v, expected 0", r.CraterDiameterM)
	}
	if r.SeismicMwEquivalent != 0 {
		t.Errorf("seismic_mw_equivalent = %v, expected exactly 0", r.SeismicMwEquivalent)
	}
	if r.TsunamiInitialHeightM != 0.01 {
		t.Errorf("tsunami_initial_height_m = %v, expected floor clamp 0.01", r.TsunamiInitialHeightM)
	}
	// The radius formula floors the yield at 0.001 Mt, so zero energy still
	// yields a small positive radius
	wantRadius := 100.0 * math.Pow(0.001, 0.25)
	if !almostEqual(r.TsunamiRadiusKm, wantRadius, 1e-12) {
		t.Errorf("tsunami_radius_km = %v, expected %v", r.TsunamiRadiusKm, wantRadius)
	}
	// Mass does not depend on velocity
	if r.MassKg == 0 {
		t.Error("mass_kg should not be zero")
	}
}

func TestSimulateDefaults(t *testing.T) {
	p := NewPipeline(nil, nil)

	resp, err := p.Simulate(context.Background(), models.SimulationRequest{})
	if err != nil {
		t.Fatalf("Simulate() returned error: %v", err)
	}

	in := resp.Input
	if in.DiameterM != DefaultDiameterM {
		t.Errorf("diameter_m default = %v, expected %v", in.DiameterM, DefaultDiameterM)
	}
	if in.VelocityMS != DefaultVelocityMS {
		t.Errorf("velocity_m_s default = %v, expected %v", in.VelocityMS, DefaultVelocityMS)
	}
	if in.DensityKgM3 != DefaultDensityKgM3 {
		t.Errorf("density default = %v, expected %v", in.DensityKgM3, DefaultDensityKgM3)
	}
	if in.WaterDepthM != DefaultWaterDepthM {
		t.Errorf("water_depth_m default = %v, expected %v", in.WaterDepthM, DefaultWaterDepthM)
	}
	if in.DeflectionMS != 0 {
		t.Errorf("deflection_m_s default = %v, expected 0", in.DeflectionMS)
	}
	if in.ImpactLat != nil || in.ImpactLon != nil {
		t.Error("expected absent coordinates to stay nil")
	}
}

func TestSimulateStringCoercion(t *testing.T) {
	p := NewPipeline(nil, nil)

	resp, err := p.Simulate(context.Background(), models.SimulationRequest{
		DiameterM:  "120",
		VelocityMS: "15000.5",
		ImpactLat:  "10.5",
	})
	if err != nil {
		t.Fatalf("Simulate() returned error: %v", err)
	}
	if resp.Input.DiameterM != 120 {
		t.Errorf("diameter_m = %v, expected 120", resp.Input.DiameterM)
	}
	if resp.Input.VelocityMS != 15000.5 {
		t.Errorf("velocity_m_s = %v, expected 15000.5", resp.Input.VelocityMS)
	}
	if resp.Input.ImpactLat == nil || *resp.Input.ImpactLat != 10.5 {
		t.Errorf("impact_lat = %v, expected 10.5", resp.Input.ImpactLat)
	}
}

func TestSimulateInvalidInput(t *testing.T) {
	p := NewPipeline(nil, nil)

	tests := []struct {
		name string
		req  models.SimulationRequest
	}{
		{"non-numeric string", models.SimulationRequest{DiameterM: "huge"}},
		{"bool value", models.SimulationRequest{VelocityMS: true}},
		{"object value", models.SimulationRequest{Density: map[string]any{"value": 1}}},
		{"bad coordinate", models.SimulationRequest{ImpactLat: "north"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Simulate(context.Background(), tt.req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSimulateCatalogOverride(t *testing.T) {
	max := 250.0
	catalog := &fakeCatalog{neo: &models.NEOLookupResponse{
		ID: "3542519",
		EstimatedDiameter: &models.EstimatedDiameter{
			Meters: &models.DiameterRange{EstimatedDiameterMax: &max},
		},
	}}
	p := NewPipeline(catalog, nil)

	resp, err := p.Simulate(context.Background(), models.SimulationRequest{
		DiameterM: 50.0,
		NEOID:     "3542519",
	})
	if err != nil {
		t.Fatalf("Simulate() returned error: %v", err)
	}
	if resp.Input.DiameterM != 250 {
		t.Errorf("diameter_m = %v, expected catalog override 250", resp.Input.DiameterM)
	}
}

func TestSimulateCatalogPayloadMissingDiameter(t *testing.T) {
	// A successful lookup without the diameter path keeps the request value
	catalog := &fakeCatalog{neo: &models.NEOLookupResponse{ID: "3542519"}}
	p := NewPipeline(catalog, nil)

	resp, err := p.Simulate(context.Background(), models.SimulationRequest{
		DiameterM: 75.0,
		NEOID:     "3542519",
	})
	if err != nil {
		t.Fatalf("Simulate() returned error: %v", err)
	}
	if resp.Input.DiameterM != 75 {
		t.Errorf("diameter_m = %v, expected request value 75", resp.Input.DiameterM)
	}
}

func TestSimulateCatalogFailure(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("dial tcp: connection refused")}
	p := NewPipeline(catalog, nil)

	resp, err := p.Simulate(context.Background(), models.SimulationRequest{NEOID: "99942"})
	if !errors.Is(err, ErrCatalogLookup) {
		t.Errorf("expected ErrCatalogLookup, got %v", err)
	}
	if resp != nil {
		t.Error("expected no partial result on catalog failure")
	}
}

func TestSimulateNoCatalogConfigured(t *testing.T) {
	p := NewPipeline(nil, nil)

	_, err := p.Simulate(context.Background(), models.SimulationRequest{NEOID: "99942"})
	if !errors.Is(err, ErrCatalogLookup) {
		t.Errorf("expected ErrCatalogLookup, got %v", err)
	}
}
