package GrMhd

import (
	"github.com/notargets/grmhd/hydro"
)

// AnalyticSolution is satisfied by every closed form GrMhd solution in the
// sub packages. Implementations hold no mutable state and are safe for
// concurrent use.
type AnalyticSolution interface {
	RestMassDensity(x hydro.Vec3, t float64) float64
	SpatialVelocity(x hydro.Vec3, t float64) hydro.Vec3
	SpecificInternalEnergy(x hydro.Vec3, t float64) float64
	Pressure(x hydro.Vec3, t float64) float64
	MagneticField(x hydro.Vec3, t float64) hydro.Vec3

	DtRestMassDensity(x hydro.Vec3, t float64) float64
	DtSpatialVelocity(x hydro.Vec3, t float64) hydro.Vec3
	DtSpecificInternalEnergy(x hydro.Vec3, t float64) float64
	DtPressure(x hydro.Vec3, t float64) float64
	DtMagneticField(x hydro.Vec3, t float64) hydro.Vec3

	AdiabaticExponent() float64
}

// Variables retrieves the primitive variables at time t and position x
func Variables(sol AnalyticSolution, x hydro.Vec3, t float64) hydro.Primitives {
	return hydro.Primitives{
		RestMassDensity:        sol.RestMassDensity(x, t),
		SpatialVelocity:        sol.SpatialVelocity(x, t),
		SpecificInternalEnergy: sol.SpecificInternalEnergy(x, t),
		Pressure:               sol.Pressure(x, t),
		MagneticField:          sol.MagneticField(x, t),
	}
}

// DtVariables retrieves the time derivatives of the primitive variables
func DtVariables(sol AnalyticSolution, x hydro.Vec3, t float64) hydro.Primitives {
	return hydro.Primitives{
		RestMassDensity:        sol.DtRestMassDensity(x, t),
		SpatialVelocity:        sol.DtSpatialVelocity(x, t),
		SpecificInternalEnergy: sol.DtSpecificInternalEnergy(x, t),
		Pressure:               sol.DtPressure(x, t),
		MagneticField:          sol.DtMagneticField(x, t),
	}
}

// EquationOfStateResidual is (Γ-1) ρ ε - p, zero up to round off for an
// ideal fluid
func EquationOfStateResidual(sol AnalyticSolution, x hydro.Vec3, t float64) float64 {
	var (
		rho = sol.RestMassDensity(x, t)
		eps = sol.SpecificInternalEnergy(x, t)
	)
	return hydro.IdealFluidPressure(rho, eps, sol.AdiabaticExponent()) - sol.Pressure(x, t)
}
