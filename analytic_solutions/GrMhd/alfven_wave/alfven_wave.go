package alfven_wave

import (
	"math"

	"github.com/notargets/grmhd/hydro"
	"github.com/notargets/grmhd/utils"
)

/*
AlfvenWave is a circularly polarized Alfven wave travelling along the z axis
through a uniform background field B0 z. With

	rho h = rho0 + P gamma/(gamma-1)
	vA    = B0 / sqrt(rho h + B0^2)
	phi   = kappa (z - vA t)
	u     = -delta vA / B0

the primitive variables are

	rho = rho0, P = P, eps = P / (rho0 (gamma-1))
	v   = (u cos(phi), u sin(phi), 0)
	B   = (delta cos(phi), delta sin(phi), B0)

B0 = 0 has no wave and produces NaNs.
*/
type AlfvenWave struct {
	Wavenumber        float64
	ConstantPressure  float64
	BackgroundDensity float64
	Gamma             float64
	BackgroundField   float64
	PerturbationSize  float64
}

func NewAlfvenWave(Wavenumber, Pressure, Rho0, Gamma, B0, PerturbationSize float64) (aw *AlfvenWave) {
	aw = &AlfvenWave{
		Wavenumber:        Wavenumber,
		ConstantPressure:  Pressure,
		BackgroundDensity: Rho0,
		Gamma:             Gamma,
		BackgroundField:   B0,
		PerturbationSize:  PerturbationSize,
	}
	return
}

func (aw *AlfvenWave) AdiabaticExponent() float64 { return aw.Gamma }

func (aw *AlfvenWave) EnthalpyDensity() float64 {
	return hydro.SpecificEnthalpyDensity(aw.BackgroundDensity, aw.ConstantPressure, aw.Gamma)
}

func (aw *AlfvenWave) AlfvenSpeed() float64 {
	return aw.BackgroundField / math.Sqrt(aw.EnthalpyDensity()+utils.POW(aw.BackgroundField, 2))
}

// Phase depends only on the z coordinate
func (aw *AlfvenWave) Phase(x hydro.Vec3, t float64) float64 {
	return aw.Wavenumber * (x[2] - aw.AlfvenSpeed()*t)
}

// FluidVelocity is the signed amplitude of the transverse velocity
func (aw *AlfvenWave) FluidVelocity() float64 {
	return -aw.PerturbationSize * aw.AlfvenSpeed() / aw.BackgroundField
}

func (aw *AlfvenWave) AngularFrequency() float64 {
	return aw.Wavenumber * aw.AlfvenSpeed()
}

func (aw *AlfvenWave) RestMassDensity(x hydro.Vec3, t float64) float64 {
	return aw.BackgroundDensity
}

func (aw *AlfvenWave) SpatialVelocity(x hydro.Vec3, t float64) hydro.Vec3 {
	var (
		phi = aw.Phase(x, t)
		u   = aw.FluidVelocity()
	)
	return hydro.Vec3{u * math.Cos(phi), u * math.Sin(phi), 0}
}

func (aw *AlfvenWave) SpecificInternalEnergy(x hydro.Vec3, t float64) float64 {
	return hydro.IdealFluidSpecificInternalEnergy(aw.BackgroundDensity, aw.ConstantPressure, aw.Gamma)
}

func (aw *AlfvenWave) Pressure(x hydro.Vec3, t float64) float64 {
	return aw.ConstantPressure
}

func (aw *AlfvenWave) MagneticField(x hydro.Vec3, t float64) hydro.Vec3 {
	var (
		phi   = aw.Phase(x, t)
		delta = aw.PerturbationSize
	)
	return hydro.Vec3{delta * math.Cos(phi), delta * math.Sin(phi), aw.BackgroundField}
}

func (aw *AlfvenWave) DtRestMassDensity(x hydro.Vec3, t float64) float64 {
	return 0
}

// dphi/dt = -omega, hence the sign pattern of the rotating derivatives
func (aw *AlfvenWave) DtSpatialVelocity(x hydro.Vec3, t float64) hydro.Vec3 {
	var (
		phi   = aw.Phase(x, t)
		u     = aw.FluidVelocity()
		omega = aw.AngularFrequency()
	)
	return hydro.Vec3{u * omega * math.Sin(phi), -u * omega * math.Cos(phi), 0}
}

func (aw *AlfvenWave) DtSpecificInternalEnergy(x hydro.Vec3, t float64) float64 {
	return 0
}

func (aw *AlfvenWave) DtPressure(x hydro.Vec3, t float64) float64 {
	return 0
}

func (aw *AlfvenWave) DtMagneticField(x hydro.Vec3, t float64) hydro.Vec3 {
	var (
		phi   = aw.Phase(x, t)
		delta = aw.PerturbationSize
		omega = aw.AngularFrequency()
	)
	return hydro.Vec3{delta * omega * math.Sin(phi), -delta * omega * math.Cos(phi), 0}
}
