package utils

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestIsNan(t *testing.T) {
	assert.False(t, IsNan(1.))
	assert.True(t, IsNan(math.NaN()))
	assert.False(t, IsNan([]float64{1, 2, 3}))
	assert.True(t, IsNan([]float64{1, math.NaN(), 3}))
	{
		v := mat.NewVecDense(3, []float64{1, 2, 3})
		assert.False(t, IsNan(v))
		v.SetVec(2, math.NaN())
		assert.True(t, IsNan(v))
	}
	{
		A := mat.NewDense(2, 3, nil)
		assert.False(t, IsNan(A))
		A.Set(1, 2, math.NaN())
		assert.True(t, IsNan(A))
	}
	// Unknown types are never NaN
	assert.False(t, IsNan("NaN"))
	assert.True(t, strings.HasPrefix(GetMemUsage(), "Alloc = "))
}
