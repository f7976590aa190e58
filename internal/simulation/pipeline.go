package simulation

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"impactcast/internal/logger"
	"impactcast/internal/models"
	"impactcast/internal/physics"
)

// Input defaults applied when a field is absent from the request.
const (
	DefaultDiameterM   = 50.0
	DefaultVelocityMS  = 20000.0
	DefaultDensityKgM3 = 3000.0
	DefaultWaterDepthM = 4000.0
)

// ResponseNotes is attached to every simulation response.
const ResponseNotes = "All estimates are rough heuristics for demo/educational purposes."

// CatalogResolver looks up a catalogued near-earth object by id.
type CatalogResolver interface {
	LookupNEO(ctx context.Context, id string) (*models.NEOLookupResponse, error)
}

// Pipeline turns a raw simulation request into an ImpactResult by running
// the physics kernel over normalized inputs. It holds no per-request state.
type Pipeline struct {
	catalog CatalogResolver
	log     *logger.Logger
}

// NewPipeline creates a simulation pipeline. The catalog may be nil, in
// which case requests carrying a neo_id fail with ErrCatalogLookup.
func NewPipeline(catalog CatalogResolver, log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.GetGlobalLogger().WithComponent("pipeline")
	}
	return &Pipeline{
		catalog: catalog,
		log:     log,
	}
}

// Simulate runs one impact simulation. The only side effect is the catalog
// lookup triggered by a present neo_id; on lookup failure the whole request
// fails with ErrCatalogLookup.
func (p *Pipeline) Simulate(ctx context.Context, req models.SimulationRequest) (*models.SimulationResponse, error) {
	diameterOverride, haveOverride, err := p.resolveDiameter(ctx, req.NEOID)
	if err != nil {
		return nil, err
	}

	diameter, err := coerceFloat(req.DiameterM, "diameter_m", DefaultDiameterM)
	if err != nil {
		return nil, err
	}
	if haveOverride {
		diameter = diameterOverride
	}

	velocity, err := coerceFloat(req.VelocityMS, "velocity_m_s", DefaultVelocityMS)
	if err != nil {
		return nil, err
	}
	density, err := coerceFloat(req.Density, "density", DefaultDensityKgM3)
	if err != nil {
		return nil, err
	}
	waterDepth, err := coerceFloat(req.WaterDepthM, "water_depth_m", DefaultWaterDepthM)
	if err != nil {
		return nil, err
	}
	deflection, err := coerceFloat(req.DeflectionMS, "deflection_m_s", 0)
	if err != nil {
		return nil, err
	}
	lat, err := coerceOptionalFloat(req.ImpactLat, "impact_lat")
	if err != nil {
		return nil, err
	}
	lon, err := coerceOptionalFloat(req.ImpactLon, "impact_lon")
	if err != nil {
		return nil, err
	}

	// Deflection can never push the velocity below zero
	vEffective := math.Max(0, velocity-deflection)

	mass := physics.SphereMass(diameter, density)
	energy := physics.KineticEnergy(mass, vEffective)
	tnt := physics.TNTEquivalentMegatons(energy)
	crater := physics.CraterDiameterEstimate(energy)
	seismicMw := physics.SeismicMwEquivalent(energy)
	tsunamiHeight := physics.TsunamiInitialWaveHeight(energy, waterDepth)
	tsunamiRadius := physics.TsunamiRadius(tnt)
	if math.IsNaN(tsunamiRadius) || math.IsInf(tsunamiRadius, 0) {
		// This one field degrades instead of failing the request
		tsunamiRadius = 0
	}

	p.log.Debug("simulation complete", map[string]interface{}{
		"diameter_m":    diameter,
		"v_effective":   vEffective,
		"energy_joules": energy,
	})

	return &models.SimulationResponse{
		Input: models.ImpactInput{
			DiameterM:    diameter,
			VelocityMS:   velocity,
			DensityKgM3:  density,
			DeflectionMS: deflection,
			ImpactLat:    lat,
			ImpactLon:    lon,
			WaterDepthM:  waterDepth,
		},
		Results: models.ImpactResult{
			MassKg:                mass,
			EnergyJoules:          energy,
			TNTMegatons:           tnt,
			CraterDiameterM:       crater,
			SeismicMwEquivalent:   seismicMw,
			TsunamiInitialHeightM: tsunamiHeight,
			TsunamiRadiusKm:       tsunamiRadius,
		},
		Notes: ResponseNotes,
	}, nil
}

// resolveDiameter looks up the NEO when an id is present. A successful
// lookup missing the diameter path keeps the caller-supplied diameter
// rather than failing.
func (p *Pipeline) resolveDiameter(ctx context.Context, neoID string) (float64, bool, error) {
	if neoID == "" {
		return 0, false, nil
	}
	if p.catalog == nil {
		return 0, false, fmt.Errorf("%w: no catalog configured for neo_id %q", ErrCatalogLookup, neoID)
	}

	neo, err := p.catalog.LookupNEO(ctx, neoID)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrCatalogLookup, err)
	}

	diameter, ok := neo.MaxDiameterMeters()
	if !ok {
		p.log.Warn("NEO payload missing diameter estimate, keeping request diameter", map[string]interface{}{
			"neo_id": neoID,
		})
		return 0, false, nil
	}

	p.log.Info("diameter resolved from NEO catalog", map[string]interface{}{
		"neo_id":     neoID,
		"diameter_m": diameter,
	})
	return diameter, true, nil
}

// coerceFloat accepts JSON numbers and numeric strings, applying the
// default when the value is absent.
func coerceFloat(v any, field string, def float64) (float64, error) {
	if v == nil {
		return def, nil
	}

	switch val := v.(type) {
	case float64:
		return val, nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: field %q: %v", ErrInvalidInput, field, err)
		}
		return f, nil
	case string:
		if val == "" {
			return def, nil
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: field %q: not a number: %q", ErrInvalidInput, field, val)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: field %q: unsupported type %T", ErrInvalidInput, field, v)
	}
}

// coerceOptionalFloat is coerceFloat without a default: absent stays absent.
func coerceOptionalFloat(v any, field string) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && s == "" {
		return nil, nil
	}
	f, err := coerceFloat(v, field, 0)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
