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
	"github.com/spf13/cobra"

	"github.com/notargets/grmhd/analytic_solutions/GrMhd"
)

func NewEvaluateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Print the primitive variables, or their time derivatives, at the sample points",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				pr *problem
			)
			if pr, err = processInput(cmd); err != nil {
				return
			}
			dt, _ := cmd.Flags().GetBool("dt")
			check, _ := cmd.Flags().GetBool("check")
			if opts.Verbose() {
				pr.ip.Print(cmd.ErrOrStderr())
			}
			vars, dtVars := GrMhd.EvaluatePoints(pr.sol, pr.X, pr.ip.Time, opts.Parallel())
			opts.Log.Debug("evaluated", "solution", pr.ip.Solution, "points", vars.N, "time", pr.ip.Time)
			if vars.HasNaN() || dtVars.HasNaN() {
				opts.Log.Warn("NaN in evaluated fields", "solution", pr.ip.Solution)
			}
			if check {
				opts.Log.Info("equation of state",
					"max_residual", GrMhd.EquationOfStateError(vars, pr.sol.AdiabaticExponent()))
			}
			fields := vars
			if dt {
				fields = dtVars
			}
			return writeTable(cmd.OutOrStdout(), opts.Format(), pr.X, pr.ip.Time, fields, dt)
		},
	}
	addInputFlag(cmd)
	cmd.Flags().Bool("dt", false, "print the time derivatives instead of the variables")
	cmd.Flags().Bool("check", false, "log the largest equation of state residual over the points")
	return cmd
}
