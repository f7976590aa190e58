package models

// NEOLookupResponse is the subset of the NASA NeoWs lookup payload the
// service consumes. Everything except the diameter estimate is carried for
// logging and report context only.
type NEOLookupResponse struct {
	ID                string             `json:"id"`
	NeoReferenceID    string             `json:"neo_reference_id"`
	Name              string             `json:"name"`
	NasaJplURL        string             `json:"nasa_jpl_url"`
	IsHazardous       bool               `json:"is_potentially_hazardous_asteroid"`
	EstimatedDiameter *EstimatedDiameter `json:"estimated_diameter"`
}

// EstimatedDiameter groups the per-unit diameter ranges of a NEO.
type EstimatedDiameter struct {
	Meters *DiameterRange `json:"meters"`
}

// DiameterRange is a min/max diameter estimate in a single unit.
type DiameterRange struct {
	EstimatedDiameterMin float64  `json:"estimated_diameter_min"`
	EstimatedDiameterMax *float64 `json:"estimated_diameter_max"`
}

// MaxDiameterMeters returns the maximum estimated diameter in meters, and
// whether the payload actually carried one. NASA occasionally returns
// records without the meters block.
func (n *NEOLookupResponse) MaxDiameterMeters() (float64, bool) {
	if n == nil || n.EstimatedDiameter == nil || n.EstimatedDiameter.Meters == nil {
		return 0, false
	}
	if n.EstimatedDiameter.Meters.EstimatedDiameterMax == nil {
		return 0, false
	}
	return *n.EstimatedDiameter.Meters.EstimatedDiameterMax, true
}
