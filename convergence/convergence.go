package convergence

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/grmhd/analytic_solutions/GrMhd"
	"github.com/notargets/grmhd/hydro"
)

/*
Study measures how central differences of the primitive variables in time
approach the analytic time derivatives as the step shrinks. For each step h
and each of the nine components the error |(f(t+h)-f(t-h))/2h - df/dt| is
recorded; the order of convergence is the least squares slope of log(error)
against log(h), which is 2 for a smooth solution.
*/
type Study struct {
	Title  string
	Point  hydro.Vec3
	Time   float64
	Steps  []float64
	Errors [][hydro.NumComponents]float64 // One row per step
	Orders [hydro.NumComponents]float64   // NaN where fewer than two errors are non-zero
}

func NewStudy(title string, x hydro.Vec3, t float64, steps []float64) *Study {
	return &Study{
		Title: title,
		Point: x,
		Time:  t,
		Steps: steps,
	}
}

func (cs *Study) Run(sol GrMhd.AnalyticSolution) {
	var (
		exact = GrMhd.DtVariables(sol, cs.Point, cs.Time).Components()
	)
	cs.Errors = make([][hydro.NumComponents]float64, len(cs.Steps))
	for n := 0; n < hydro.NumComponents; n++ {
		f := func(t float64) float64 {
			return GrMhd.Variables(sol, cs.Point, t).Components()[n]
		}
		for i, h := range cs.Steps {
			approx := fd.Derivative(f, cs.Time, &fd.Settings{Formula: fd.Central, Step: h})
			cs.Errors[i][n] = math.Abs(approx - exact[n])
		}
		cs.Orders[n] = cs.order(n)
	}
}

func (cs *Study) order(n int) float64 {
	var (
		logH, logE []float64
	)
	for i, h := range cs.Steps {
		if e := cs.Errors[i][n]; e > 0 {
			logH = append(logH, math.Log(h))
			logE = append(logE, math.Log(e))
		}
	}
	if len(logH) < 2 {
		return math.NaN()
	}
	_, beta := stat.LinearRegression(logH, logE, nil, false)
	return beta
}

// MinOrder is the lowest measured order, ignoring components with no error
func (cs *Study) MinOrder() (order float64) {
	order = math.Inf(1)
	for _, o := range cs.Orders {
		if !math.IsNaN(o) {
			order = math.Min(order, o)
		}
	}
	return
}

func (cs *Study) Print(w io.Writer) {
	fmt.Fprintf(w, "Title = %s, Point = %v, Time = %8.5f\n", cs.Title, cs.Point, cs.Time)
	for n, label := range hydro.ComponentLabels {
		if math.IsNaN(cs.Orders[n]) {
			fmt.Fprintf(w, "%4s: exact\n", label)
			continue
		}
		fmt.Fprintf(w, "%4s: order = %6.3f, error(h=%g) = %10.3e\n",
			label, cs.Orders[n], cs.Steps[len(cs.Steps)-1], cs.Errors[len(cs.Steps)-1][n])
	}
}

// WriteCSV writes one record per step: title, h, then the component errors
func (cs *Study) WriteCSV(w io.Writer, header bool) (err error) {
	cw := csv.NewWriter(w)
	if header {
		rec := []string{"Title", "h"}
		rec = append(rec, hydro.ComponentLabels[:]...)
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	for i, h := range cs.Steps {
		rec := []string{cs.Title, strconv.FormatFloat(h, 'e', 6, 64)}
		for _, e := range cs.Errors[i] {
			rec = append(rec, strconv.FormatFloat(e, 'e', 6, 64))
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
