package physics

import "math"

// Physical constants used by the impact estimate formulas.
const (
	// JoulesPerMegatonTNT is the energy released by one megaton of TNT.
	JoulesPerMegatonTNT = 4.184e15
	// CraterScalingCoefficient is the empirical coefficient of the
	// energy-to-crater-diameter scaling law.
	CraterScalingCoefficient = 0.07
)

// Tsunami clamp bounds.
const (
	MinTsunamiHeightM = 0.01
	MaxTsunamiHeightM = 200.0
	MaxTsunamiRadiusKm = 5000.0
)

// SphereMass returns the mass in kg of a uniform sphere with the given
// diameter (m) and bulk density (kg/m³).
func SphereMass(diameterM, densityKgM3 float64) float64 {
	r := diameterM / 2.0
	return (4.0 / 3.0) * math.Pi * r * r * r * densityKgM3
}

// KineticEnergy returns the kinetic energy in joules of a mass (kg) moving
// at the given velocity (m/s).
func KineticEnergy(massKg, velocityMS float64) float64 {
	return 0.5 * massKg * velocityMS * velocityMS
}

// TNTEquivalentMegatons converts impact energy in joules to megatons of TNT.
func TNTEquivalentMegatons(joules float64) float64 {
	return joules / JoulesPerMegatonTNT
}

// CraterDiameterEstimate returns the estimated transient crater diameter in
// meters from impact energy, using the empirical cube-root scaling law.
func CraterDiameterEstimate(joules float64) float64 {
	return CraterScalingCoefficient * math.Cbrt(joules)
}

// SeismicMwEquivalent maps impact energy to an earthquake-magnitude-like
// scalar via the empirical energy-magnitude relation. Non-positive energy
// returns exactly 0 (the log is undefined there).
func SeismicMwEquivalent(joules float64) float64 {
	if joules <= 0 {
		return 0
	}
	return (math.Log10(joules) - 5.24) / 1.44
}

// TsunamiInitialWaveHeight estimates the initial wave height in meters for
// an ocean impact. Shallower water amplifies and deeper water damps the
// wave, within a bounded multiplicative range. The result is clamped to
// [MinTsunamiHeightM, MaxTsunamiHeightM].
func TsunamiInitialWaveHeight(joules, waterDepthM float64) float64 {
	scale := math.Pow(joules/1e15, 0.25)
	depthFactor := clamp(4000.0/math.Max(1.0, waterDepthM), 0.5, 2.0)
	return clamp(0.5*scale*depthFactor, MinTsunamiHeightM, MaxTsunamiHeightM)
}

// TsunamiRadius estimates how far coastal effects may reach, in km, from
// the TNT-equivalent yield. The yield is floored at 0.001 Mt before the
// fractional power so non-positive input stays in the real domain. The
// result is clamped to [0, MaxTsunamiRadiusKm].
func TsunamiRadius(tntMegatons float64) float64 {
	r := 100.0 * math.Pow(math.Max(0.001, tntMegatons), 0.25)
	return math.Min(MaxTsunamiRadiusKm, r)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
