package geom

import "math"

// CODATA 2018 values, SI units.
const (
	planckConstant = 6.62607015e-34
	electronMass   = 9.1093837015e-31
	electronCharge = 1.602176634e-19
	speedOfLight   = 299792458.0
)

// ElectronWavelength returns the relativistic electron wavelength in
// Angstroms for an accelerating voltage in kV. It feeds the Ewald sphere
// mapping when converting scans to reciprocal-space coordinates.
func ElectronWavelength(kV float64) float64 {
	e := kV * 1e3
	rel := 1 + (electronCharge/(2*electronMass*speedOfLight*speedOfLight))*e
	return planckConstant / math.Sqrt(2*electronMass*electronCharge*e*rel) * 1e10
}
