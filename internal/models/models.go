package models

// ImpactInput holds the normalized physical inputs for one simulation,
// echoed back to the caller alongside the results.
type ImpactInput struct {
	DiameterM    float64  `json:"diameter_m"`
	VelocityMS   float64  `json:"velocity_m_s"`
	DensityKgM3  float64  `json:"density"`
	DeflectionMS float64  `json:"deflection_m_s"`
	ImpactLat    *float64 `json:"impact_lat"`
	ImpactLon    *float64 `json:"impact_lon"`
	WaterDepthM  float64  `json:"water_depth_m"`
}

// ImpactResult holds the derived physical quantities of one simulation.
type ImpactResult struct {
	MassKg                float64 `json:"mass_kg"`
	EnergyJoules          float64 `json:"energy_joules"`
	TNTMegatons           float64 `json:"tnt_megatons"`
	CraterDiameterM       float64 `json:"crater_diameter_m"`
	SeismicMwEquivalent   float64 `json:"seismic_mw_equivalent"`
	TsunamiInitialHeightM float64 `json:"tsunami_initial_height_m"`
	TsunamiRadiusKm       float64 `json:"tsunami_radius_km"`
}

// SimulationRequest is the raw simulation request body. Numeric fields are
// untyped so the pipeline can coerce JSON numbers as well as numeric
// strings, the way permissive clients send them.
type SimulationRequest struct {
	DiameterM    any    `json:"diameter_m"`
	VelocityMS   any    `json:"velocity_m_s"`
	Density      any    `json:"density"`
	WaterDepthM  any    `json:"water_depth_m"`
	DeflectionMS any    `json:"deflection_m_s"`
	ImpactLat    any    `json:"impact_lat"`
	ImpactLon    any    `json:"impact_lon"`
	NEOID        string `json:"neo_id"`
}

// SimulationResponse is the full simulation response envelope.
type SimulationResponse struct {
	Input   ImpactInput  `json:"input"`
	Results ImpactResult `json:"results"`
	Notes   string       `json:"notes"`
}

// StoryResults carries the result fields the narrative needs. Pointers
// distinguish absent fields so the formatter can report them; the crater
// diameter is optional and treated as 0 when missing.
type StoryResults struct {
	TNTMegatons           *float64 `json:"tnt_megatons"`
	CraterDiameterM       *float64 `json:"crater_diameter_m"`
	SeismicMwEquivalent   *float64 `json:"seismic_mw_equivalent"`
	TsunamiInitialHeightM *float64 `json:"tsunami_initial_height_m"`
	TsunamiRadiusKm       *float64 `json:"tsunami_radius_km"`
}

// StoryInput carries the optional location fields of a story request.
type StoryInput struct {
	ImpactLat *float64 `json:"impact_lat"`
	ImpactLon *float64 `json:"impact_lon"`
}

// StoryRequest accepts either a full simulation response or a bare results
// object. When Results is nil the request body itself is the results
// object; the server re-decodes it accordingly.
type StoryRequest struct {
	Input   *StoryInput   `json:"input"`
	Results *StoryResults `json:"results"`
}

// StoryResponse wraps the generated narrative paragraph.
type StoryResponse struct {
	Story string `json:"story"`
}

// FromImpactResult converts a computed result into the narrative's view.
func FromImpactResult(r ImpactResult) StoryResults {
	return StoryResults{
		TNTMegatons:           &r.TNTMegatons,
		CraterDiameterM:       &r.CraterDiameterM,
		SeismicMwEquivalent:   &r.SeismicMwEquivalent,
		TsunamiInitialHeightM: &r.TsunamiInitialHeightM,
		TsunamiRadiusKm:       &r.TsunamiRadiusKm,
	}
}
