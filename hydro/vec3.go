package hydro

import (
	"gonum.org/v1/gonum/floats"
)

// Vec3 is a Cartesian 3-vector, used for positions and for the spatial
// components of velocity and magnetic field
type Vec3 [3]float64

func (a Vec3) Dot(b Vec3) float64 {
	return floats.Dot(a[:], b[:])
}

func (a Vec3) Add(b Vec3) (c Vec3) {
	for i := range c {
		c[i] = a[i] + b[i]
	}
	return
}

func (a Vec3) Sub(b Vec3) (c Vec3) {
	for i := range c {
		c[i] = a[i] - b[i]
	}
	return
}

func (a Vec3) Scale(s float64) (c Vec3) {
	for i := range c {
		c[i] = s * a[i]
	}
	return
}

// Norm2 is the squared Euclidean length
func (a Vec3) Norm2() float64 {
	return a.Dot(a)
}

func (a Vec3) Slice() []float64 {
	return []float64{a[0], a[1], a[2]}
}
