package GrMhd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/grmhd/hydro"
	"github.com/notargets/grmhd/utils"
)

// Fields holds the primitive variables (or their time derivatives) on a set
// of N points. Vectors are stored as N x 3 matrices, one row per point.
type Fields struct {
	N           int
	Rho, Eps, P *mat.VecDense
	V, B        *mat.Dense
}

func NewFields(N int) (f *Fields) {
	f = &Fields{
		N:   N,
		Rho: mat.NewVecDense(N, nil),
		Eps: mat.NewVecDense(N, nil),
		P:   mat.NewVecDense(N, nil),
		V:   mat.NewDense(N, 3, nil),
		B:   mat.NewDense(N, 3, nil),
	}
	return
}

func (f *Fields) Set(i int, p hydro.Primitives) {
	f.Rho.SetVec(i, p.RestMassDensity)
	f.Eps.SetVec(i, p.SpecificInternalEnergy)
	f.P.SetVec(i, p.Pressure)
	f.V.SetRow(i, p.SpatialVelocity[:])
	f.B.SetRow(i, p.MagneticField[:])
}

func (f *Fields) At(i int) (p hydro.Primitives) {
	p.RestMassDensity = f.Rho.AtVec(i)
	p.SpecificInternalEnergy = f.Eps.AtVec(i)
	p.Pressure = f.P.AtVec(i)
	for n := 0; n < 3; n++ {
		p.SpatialVelocity[n] = f.V.At(i, n)
		p.MagneticField[n] = f.B.At(i, n)
	}
	return
}

// Column copies one component of one field over all points
func (f *Fields) Column(field hydro.Field, dim int) (col []float64) {
	if dim < 0 || dim >= field.NumComponents() {
		panic(fmt.Errorf("component %d out of range for %s", dim, field))
	}
	col = make([]float64, f.N)
	switch field {
	case hydro.RestMassDensity:
		copy(col, f.Rho.RawVector().Data)
	case hydro.SpecificInternalEnergy:
		copy(col, f.Eps.RawVector().Data)
	case hydro.Pressure:
		copy(col, f.P.RawVector().Data)
	case hydro.SpatialVelocity:
		mat.Col(col, dim, f.V)
	case hydro.MagneticField:
		mat.Col(col, dim, f.B)
	}
	return
}

// HasNaN reports whether any component at any point is NaN
func (f *Fields) HasNaN() bool {
	return utils.IsNan(f.Rho) || utils.IsNan(f.Eps) || utils.IsNan(f.P) ||
		utils.IsNan(f.V) || utils.IsNan(f.B)
}

// MaxAbsDiff is the largest pointwise difference over all components
func (f *Fields) MaxAbsDiff(g *Fields) (diff float64) {
	if f.N != g.N {
		panic(fmt.Errorf("field sizes differ: %d and %d", f.N, g.N))
	}
	for field := hydro.RestMassDensity; field <= hydro.MagneticField; field++ {
		for dim := 0; dim < field.NumComponents(); dim++ {
			diff = math.Max(diff, floats.Distance(f.Column(field, dim), g.Column(field, dim), math.Inf(1)))
		}
	}
	return
}

/*
EvaluatePoints fills the primitive variables and their time derivatives at
time t on every row of X (N x 3). The rows are split into ParallelDegree
contiguous buckets, each evaluated in its own goroutine; ParallelDegree < 1
uses one bucket per CPU.
*/
func EvaluatePoints(sol AnalyticSolution, X mat.Matrix, t float64,
	ParallelDegree int) (vars, dtVars *Fields) {
	var (
		N, nc = X.Dims()
	)
	if nc != 3 {
		panic(fmt.Errorf("points must be N x 3, have %d x %d", N, nc))
	}
	vars, dtVars = NewFields(N), NewFields(N)
	utils.ParallelRange(ParallelDegree, N, func(bn, kMin, kMax int) {
		var x hydro.Vec3
		for k := kMin; k < kMax; k++ {
			x = hydro.Vec3{X.At(k, 0), X.At(k, 1), X.At(k, 2)}
			vars.Set(k, Variables(sol, x, t))
			dtVars.Set(k, DtVariables(sol, x, t))
		}
	})
	return
}

// EquationOfStateError is the largest |(Γ-1) ρ ε - p| over the points
func EquationOfStateError(vars *Fields, gamma float64) (maxErr float64) {
	var (
		res = make([]float64, vars.N)
	)
	for i := 0; i < vars.N; i++ {
		res[i] = math.Abs(hydro.IdealFluidPressure(vars.Rho.AtVec(i), vars.Eps.AtVec(i), gamma) -
			vars.P.AtVec(i))
	}
	if vars.N > 0 {
		maxErr = floats.Max(res)
	}
	return
}
