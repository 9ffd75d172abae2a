package smooth_flow

import (
	"math"

	"github.com/notargets/grmhd/hydro"
)

/*
SmoothFlow is a periodic GrMhd solution in Minkowski spacetime with zero
magnetic field. A sinusoidal density profile with wave vector k and
amplitude A is advected at the constant mean velocity v:

	rho(x,t) = 1 + A sin(k.(x - v t))
	v(x,t)   = v
	P(x,t)   = P
	eps(x,t) = P / ((gamma-1) rho)
	B(x,t)   = 0

Inputs are not checked; A must satisfy |A| < 1 to keep rho positive and
gamma must differ from 1.
*/
type SmoothFlow struct {
	MeanVelocity, WaveVector hydro.Vec3
	ConstantPressure         float64
	Gamma                    float64
	PerturbationSize         float64
}

func NewSmoothFlow(MeanVelocity, WaveVector hydro.Vec3,
	Pressure, Gamma, PerturbationSize float64) (sf *SmoothFlow) {
	sf = &SmoothFlow{
		MeanVelocity:     MeanVelocity,
		WaveVector:       WaveVector,
		ConstantPressure: Pressure,
		Gamma:            Gamma,
		PerturbationSize: PerturbationSize,
	}
	return
}

func (sf *SmoothFlow) AdiabaticExponent() float64 { return sf.Gamma }

// KDotV is the angular frequency of the density wave
func (sf *SmoothFlow) KDotV() float64 {
	return sf.WaveVector.Dot(sf.MeanVelocity)
}

func (sf *SmoothFlow) phase(x hydro.Vec3, t float64) float64 {
	return sf.WaveVector.Dot(x.Sub(sf.MeanVelocity.Scale(t)))
}

func (sf *SmoothFlow) RestMassDensity(x hydro.Vec3, t float64) float64 {
	return 1. + sf.PerturbationSize*math.Sin(sf.phase(x, t))
}

func (sf *SmoothFlow) SpatialVelocity(x hydro.Vec3, t float64) hydro.Vec3 {
	return sf.MeanVelocity
}

func (sf *SmoothFlow) SpecificInternalEnergy(x hydro.Vec3, t float64) float64 {
	return hydro.IdealFluidSpecificInternalEnergy(sf.RestMassDensity(x, t), sf.ConstantPressure, sf.Gamma)
}

func (sf *SmoothFlow) Pressure(x hydro.Vec3, t float64) float64 {
	return sf.ConstantPressure
}

func (sf *SmoothFlow) MagneticField(x hydro.Vec3, t float64) hydro.Vec3 {
	return hydro.Vec3{}
}

func (sf *SmoothFlow) DtRestMassDensity(x hydro.Vec3, t float64) float64 {
	return -sf.PerturbationSize * sf.KDotV() * math.Cos(sf.phase(x, t))
}

func (sf *SmoothFlow) DtSpatialVelocity(x hydro.Vec3, t float64) hydro.Vec3 {
	return hydro.Vec3{}
}

func (sf *SmoothFlow) DtSpecificInternalEnergy(x hydro.Vec3, t float64) float64 {
	var (
		rho = sf.RestMassDensity(x, t)
	)
	return -sf.ConstantPressure / ((sf.Gamma - 1.) * rho * rho) * sf.DtRestMassDensity(x, t)
}

func (sf *SmoothFlow) DtPressure(x hydro.Vec3, t float64) float64 {
	return 0
}

func (sf *SmoothFlow) DtMagneticField(x hydro.Vec3, t float64) hydro.Vec3 {
	return hydro.Vec3{}
}
