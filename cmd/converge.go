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
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/grmhd/convergence"
)

func NewConvergeCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "converge",
		Short: "Check that central differences in time converge to the analytic derivatives",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				pr      *problem
				steps   []float64
				csvFile string
				minimum float64
				out     = cmd.OutOrStdout()
			)
			if pr, err = processInput(cmd); err != nil {
				return
			}
			if steps, err = cmd.Flags().GetFloat64Slice("steps"); err != nil {
				return
			}
			if len(steps) < 2 {
				return fmt.Errorf("need at least two steps, have %v", steps)
			}
			csvFile, _ = cmd.Flags().GetString("csv")
			minimum, _ = cmd.Flags().GetFloat64("minOrder")
			var f *os.File
			if len(csvFile) != 0 {
				if f, err = os.Create(csvFile); err != nil {
					return
				}
			}
			N, _ := pr.X.Dims()
			for i := 0; i < N; i++ {
				cs := convergence.NewStudy(pr.ip.Title, point(pr.X, i), pr.ip.Time, steps)
				cs.Run(pr.sol)
				cs.Print(out)
				opts.Log.Debug("convergence study", "point", cs.Point, "min_order", cs.MinOrder())
				if f != nil {
					if err = cs.WriteCSV(f, i == 0); err != nil {
						f.Close()
						return
					}
				}
				if minimum > 0 && cs.MinOrder() < minimum {
					err = fmt.Errorf("convergence order %.3f at %v is below %.3f", cs.MinOrder(), cs.Point, minimum)
					break
				}
			}
			if f != nil {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("closing %s: %w", csvFile, cerr)
				}
			}
			return
		},
	}
	addInputFlag(cmd)
	cmd.Flags().Float64Slice("steps", []float64{0.1, 0.05, 0.025, 0.0125}, "time steps of the central differences")
	cmd.Flags().String("csv", "", "also write the errors to this CSV file")
	cmd.Flags().Float64("minOrder", 0, "fail when any measured order falls below this value, 0 disables")
	return cmd
}
