/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"image/color"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/grmhd/analytic_solutions/GrMhd"
	"github.com/notargets/grmhd/hydro"
)

func NewPlotCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot one component of a field along the sample points",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				pr    *problem
				field hydro.Field
			)
			if pr, err = processInput(cmd); err != nil {
				return
			}
			name, _ := cmd.Flags().GetString("field")
			dim, _ := cmd.Flags().GetInt("component")
			dt, _ := cmd.Flags().GetBool("dt")
			if field, err = ParsePlotField(name, dim); err != nil {
				return
			}
			vars, dtVars := GrMhd.EvaluatePoints(pr.sol, pr.X, pr.ip.Time, opts.Parallel())
			if dt {
				vars = dtVars
			}
			var (
				s     = arcLength(pr.X)
				f     = vars.Column(field, dim)
				title = plotTitle(pr.ip.Title, field, dim, pr.ip.Time, dt)
			)
			if len(s) < 2 {
				return fmt.Errorf("need at least two sample points to plot, have %d", len(s))
			}
			if s[len(s)-1] == 0 {
				return fmt.Errorf("sample points all coincide at %v, nothing to plot along", point(pr.X, 0))
			}
			opts.Log.Debug("plotting", "field", field, "component", dim, "points", len(s))
			PlotLine(s, f, title)
			return
		},
	}
	addInputFlag(cmd)
	cmd.Flags().String("field", "rho", "field to plot: rho, v, eps, p or b")
	cmd.Flags().Int("component", 0, "component of a vector field, 0, 1 or 2")
	cmd.Flags().Bool("dt", false, "plot the time derivative instead of the variable")
	return cmd
}

func ParsePlotField(name string, dim int) (field hydro.Field, err error) {
	if field, err = hydro.ParseField(name); err != nil {
		return
	}
	if dim < 0 || dim >= field.NumComponents() {
		err = fmt.Errorf("component %d out of range for %s", dim, field)
	}
	return
}

func plotTitle(title string, field hydro.Field, dim int, t float64, dt bool) string {
	label := hydro.ComponentLabels[field.Offset()+dim]
	if dt {
		label = "d" + label + "/dt"
	}
	return fmt.Sprintf("%s: %s at t = %g", title, label, t)
}

// arcLength is the cumulative distance along the rows of X
func arcLength(X mat.Matrix) (s []float64) {
	var (
		N, _ = X.Dims()
	)
	s = make([]float64, N)
	for i := 1; i < N; i++ {
		s[i] = s[i-1] + floats.Distance(point(X, i).Slice(), point(X, i-1).Slice(), 2)
	}
	return
}

// lineSegments packs the polyline (s[i], f[i]) as x1,y1,x2,y2 segments
func lineSegments(s, f []float64) (line []float32) {
	line = make([]float32, 0, 4*(len(s)-1))
	for i := 1; i < len(s); i++ {
		line = append(line,
			float32(s[i-1]), float32(f[i-1]),
			float32(s[i]), float32(f[i]),
		)
	}
	return
}

// plotRange pads the extent of f by 5%, constant fields get a unit window
func plotRange(f []float64) (fMin, fMax float32) {
	var (
		lo, hi = floats.Min(f), floats.Max(f)
		pad    = 0.05 * (hi - lo)
	)
	if pad == 0 {
		pad = 0.5
	}
	return float32(lo - pad), float32(hi + pad)
}

func PlotLine(s, f []float64, title string) {
	var (
		xMin, xMax = float32(s[0]), float32(s[len(s)-1])
		yMin, yMax = plotRange(f)
	)
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	ch.AddLine(lineSegments(s, f), utils2.RED)
	tf := assets.NewTextFormatter("NotoSans", "Regular", 24,
		color.RGBA{R: 0, G: 0, B: 0, A: 255}, true, false)
	ch.Printf(tf, xMin, yMax, "%s", title)
	select {}
}
