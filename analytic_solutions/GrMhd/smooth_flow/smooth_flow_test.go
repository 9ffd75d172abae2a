package smooth_flow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/notargets/grmhd/hydro"
	"github.com/notargets/grmhd/utils"
)

func TestSmoothFlow(t *testing.T) {
	{ // Density wave along x
		sf := NewSmoothFlow(hydro.Vec3{1, 0, 0}, hydro.Vec3{2 * math.Pi, 0, 0}, 1., 1.4, 0.3)
		assert.InDelta(t, 1.0, sf.RestMassDensity(hydro.Vec3{}, 0), 1.e-15)
		assert.InDelta(t, 1.3, sf.RestMassDensity(hydro.Vec3{0.25, 0, 0}, 0), 1.e-15)
		// After one period the profile is back where it started
		assert.InDelta(t, 1.3, sf.RestMassDensity(hydro.Vec3{0.25, 0, 0}, 1), 1.e-12)
		assert.InDelta(t, 2*math.Pi, sf.KDotV(), 1.e-15)
	}
	{ // Reference values from an independent evaluation of the closed form
		sf := NewSmoothFlow(hydro.Vec3{0.1, 0.2, 0.3}, hydro.Vec3{2, -1, 0.5}, 1.25, 1.4, 0.35)
		x, tt := hydro.Vec3{0.3, -0.2, 0.7}, 0.45
		assert.True(t, utils.Near(1.3090966796579386, sf.RestMassDensity(x, tt), 1.e-14))
		assert.Equal(t, hydro.Vec3{0.1, 0.2, 0.3}, sf.SpatialVelocity(x, tt))
		assert.True(t, utils.Near(2.3871422550827566, sf.SpecificInternalEnergy(x, tt), 1.e-14))
		assert.Equal(t, 1.25, sf.Pressure(x, tt))
		assert.Equal(t, hydro.Vec3{}, sf.MagneticField(x, tt))
		assert.True(t, utils.Near(-0.02462890495027836, sf.DtRestMassDensity(x, tt), 1.e-14))
		assert.Equal(t, hydro.Vec3{}, sf.DtSpatialVelocity(x, tt))
		assert.True(t, utils.Near(0.04491089208062817, sf.DtSpecificInternalEnergy(x, tt), 1.e-14))
		assert.Equal(t, 0., sf.DtPressure(x, tt))
		assert.Equal(t, hydro.Vec3{}, sf.DtMagneticField(x, tt))
		assert.Equal(t, 1.4, sf.AdiabaticExponent())
	}
}

func TestSmoothFlowProperties(t *testing.T) {
	var (
		sf     = NewSmoothFlow(hydro.Vec3{0.2, -0.1, 0.4}, hydro.Vec3{1.5, 0.5, -2}, 0.9, 5./3., 0.4)
		points = []hydro.Vec3{{0, 0, 0}, {0.3, -0.2, 0.7}, {-1.1, 2.5, 0.05}, {10, -7, 3}}
		times  = []float64{0, 0.37, 1.9, -2.2}
	)
	for _, x := range points {
		for _, tt := range times {
			{ // Equation of state
				rho, eps, p := sf.RestMassDensity(x, tt), sf.SpecificInternalEnergy(x, tt), sf.Pressure(x, tt)
				assert.InDelta(t, p, hydro.IdealFluidPressure(rho, eps, sf.Gamma), 1.e-13)
				assert.Equal(t, hydro.IdealFluidSpecificInternalEnergy(rho, p, sf.Gamma), eps)
			}
			{ // Phase of the advected wave is k.x - (k.v) t
				k := sf.WaveVector
				assert.InDelta(t, k.Dot(x)-sf.KDotV()*tt, sf.phase(x, tt), 1.e-13)
			}
			{ // No magnetic field
				assert.Equal(t, hydro.Vec3{}, sf.MagneticField(x, tt))
				assert.Equal(t, hydro.Vec3{}, sf.DtMagneticField(x, tt))
			}
			{ // Central differences converge to the analytic time derivatives
				settings := &fd.Settings{Formula: fd.Central, Step: 1.e-5}
				rho := func(tt float64) float64 { return sf.RestMassDensity(x, tt) }
				eps := func(tt float64) float64 { return sf.SpecificInternalEnergy(x, tt) }
				assert.InDelta(t, sf.DtRestMassDensity(x, tt), fd.Derivative(rho, tt, settings), 1.e-8)
				assert.InDelta(t, sf.DtSpecificInternalEnergy(x, tt), fd.Derivative(eps, tt, settings), 1.e-8)
				for i := 0; i < 3; i++ {
					vi := func(tt float64) float64 { return sf.SpatialVelocity(x, tt)[i] }
					assert.InDelta(t, sf.DtSpatialVelocity(x, tt)[i], fd.Derivative(vi, tt, settings), 1.e-12)
				}
			}
			{ // Translation orthogonal to the wave vector leaves everything unchanged
				k := sf.WaveVector
				orth := hydro.Vec3{k[1], -k[0], 0}.Scale(1.7)
				xs := x.Add(orth)
				assert.InDelta(t, sf.RestMassDensity(x, tt), sf.RestMassDensity(xs, tt), 1.e-12)
				assert.Equal(t, sf.Pressure(x, tt), sf.Pressure(xs, tt))
			}
		}
	}
}
