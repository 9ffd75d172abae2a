package hydro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3(t *testing.T) {
	a, b := Vec3{1, 2, 3}, Vec3{-2, 0.5, 4}
	assert.Equal(t, 11., a.Dot(b))
	assert.Equal(t, Vec3{-1, 2.5, 7}, a.Add(b))
	assert.Equal(t, Vec3{3, 1.5, -1}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, 14., a.Norm2())
	assert.Equal(t, []float64{1, 2, 3}, a.Slice())
}

func TestPrimitives(t *testing.T) {
	p := Primitives{
		RestMassDensity:        1.1,
		SpatialVelocity:        Vec3{0.1, 0.2, 0.3},
		SpecificInternalEnergy: 2.5,
		Pressure:               1,
		MagneticField:          Vec3{-1, -2, -3},
	}
	assert.Equal(t, [NumComponents]float64{1.1, 0.1, 0.2, 0.3, 2.5, 1, -1, -2, -3}, p.Components())
	{ // Offsets line up with the flattened layout
		assert.Equal(t, 0, RestMassDensity.Offset())
		assert.Equal(t, 1, SpatialVelocity.Offset())
		assert.Equal(t, 4, SpecificInternalEnergy.Offset())
		assert.Equal(t, 5, Pressure.Offset())
		assert.Equal(t, 6, MagneticField.Offset())
		assert.Equal(t, 0.2, p.Component(SpatialVelocity, 1))
		assert.Equal(t, -3., p.Component(MagneticField, 2))
		assert.Equal(t, 2.5, p.Component(SpecificInternalEnergy, 0))
		assert.Panics(t, func() { p.Component(Pressure, 1) })
	}
	{ // Names
		for _, name := range []string{"rho", "RestMassDensity", " B ", "eps"} {
			_, err := ParseField(name)
			require.NoError(t, err)
		}
		f, _ := ParseField("magneticfield")
		assert.Equal(t, MagneticField, f)
		assert.Equal(t, "MagneticField", f.String())
		_, err := ParseField("vorticity")
		assert.Error(t, err)
		assert.Equal(t, "Field(9)", Field(9).String())
	}
}

func TestIdealFluid(t *testing.T) {
	rho, p, gamma := 1.3, 0.7, 5./3.
	eps := IdealFluidSpecificInternalEnergy(rho, p, gamma)
	assert.InDelta(t, p, IdealFluidPressure(rho, eps, gamma), 1.e-14)
	assert.InDelta(t, 1.3+0.7*2.5, SpecificEnthalpyDensity(rho, p, gamma), 1.e-14)
}
