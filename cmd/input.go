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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/grmhd/InputParameters"
	"github.com/notargets/grmhd/analytic_solutions/GrMhd"
	"github.com/notargets/grmhd/hydro"
)

const exampleFile = `
########################################
Title: "Alfven wave"
Solution: AlfvenWave # Can be "SmoothFlow"
Time: 0.5
AlfvenWave:
  Wavenumber: 2.2
  Pressure: 1.3
  RestMassDensity: 0.8
  AdiabaticExponent: 1.3333333333333333
  BackgroundMagField: 0.6
  PerturbationSize: 0.15
Sample:
  Start: [0., 0., 0.]
  End: [0., 0., 1.]
  NumPoints: 11
########################################
`

func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file naming the solution, its options, the time and the sample points")
}

type problem struct {
	ip  *InputParameters.InputParametersGRMHD
	sol GrMhd.AnalyticSolution
	X   *mat.Dense
}

func processInput(cmd *cobra.Command) (pr *problem, err error) {
	var (
		fileName string
		data     []byte
	)
	if fileName, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
		return
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile), example:%s", exampleFile)
	}
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	pr = &problem{ip: &InputParameters.InputParametersGRMHD{}}
	if err = pr.ip.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if pr.sol, err = pr.ip.NewSolution(); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	if pr.X, err = pr.ip.SamplePoints(); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return
}

func point(X mat.Matrix, i int) hydro.Vec3 {
	return hydro.Vec3{X.At(i, 0), X.At(i, 1), X.At(i, 2)}
}

func tableHeader(dt bool) (header []string) {
	header = []string{"x1", "x2", "x3", "t"}
	for _, label := range hydro.ComponentLabels {
		if dt {
			label = "d" + label + "/dt"
		}
		header = append(header, label)
	}
	return
}

// writeTable writes one row per point: the coordinates, the time and the nine
// components of fields
func writeTable(w io.Writer, format string, X mat.Matrix, t float64,
	fields *GrMhd.Fields, dt bool) (err error) {
	var (
		header = tableHeader(dt)
		row    = make([]float64, 0, len(header))
	)
	rowValues := func(i int) []float64 {
		x := point(X, i)
		comps := fields.At(i).Components()
		row = append(row[:0], x[0], x[1], x[2], t)
		return append(row, comps[:]...)
	}
	switch format {
	case "csv":
		cw := csv.NewWriter(w)
		if err = cw.Write(header); err != nil {
			return
		}
		rec := make([]string, len(header))
		for i := 0; i < fields.N; i++ {
			for j, val := range rowValues(i) {
				rec[j] = strconv.FormatFloat(val, 'e', 8, 64)
			}
			if err = cw.Write(rec); err != nil {
				return
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		var sb strings.Builder
		sb.WriteString("#")
		for _, label := range header {
			fmt.Fprintf(&sb, "%16s", label)
		}
		sb.WriteString("\n")
		for i := 0; i < fields.N; i++ {
			sb.WriteString(" ")
			for _, val := range rowValues(i) {
				fmt.Fprintf(&sb, "%16.8e", val)
			}
			sb.WriteString("\n")
		}
		_, err = io.WriteString(w, sb.String())
		return
	}
}
