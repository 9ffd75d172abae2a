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
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/grmhd/analytic_solutions/GrMhd"
	"github.com/notargets/grmhd/utils"
)

// tilePoints repeats the rows of X until there are N of them
func tilePoints(X mat.Matrix, N int) (T *mat.Dense) {
	var (
		nr, _ = X.Dims()
	)
	T = mat.NewDense(N, 3, nil)
	for i := 0; i < N; i++ {
		T.SetRow(i, point(X, i%nr).Slice())
	}
	return
}

func NewBenchCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time bulk evaluation of the solution and its derivatives",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				pr       *problem
				out      = cmd.OutOrStdout()
				nPoints  int
				repeat   int
				prof     string
				profPath string
				counters bool
			)
			if pr, err = processInput(cmd); err != nil {
				return
			}
			nPoints, _ = cmd.Flags().GetInt("numPoints")
			repeat, _ = cmd.Flags().GetInt("repeat")
			prof, _ = cmd.Flags().GetString("profile")
			profPath, _ = cmd.Flags().GetString("profilePath")
			counters, _ = cmd.Flags().GetBool("counters")
			if nPoints < 1 || repeat < 1 {
				return fmt.Errorf("numPoints and repeat must be positive, have %d and %d", nPoints, repeat)
			}
			switch prof {
			case "":
			case "cpu":
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(profPath), profile.Quiet).Stop()
			case "mem":
				defer profile.Start(profile.MemProfile, profile.ProfilePath(profPath), profile.Quiet).Stop()
			default:
				return fmt.Errorf("unknown profile %q: must be cpu or mem", prof)
			}
			var (
				X  = tilePoints(pr.X, nPoints)
				np = opts.Parallel()
			)
			run := func() error {
				for n := 0; n < repeat; n++ {
					GrMhd.EvaluatePoints(pr.sol, X, pr.ip.Time, np)
				}
				return nil
			}
			start := time.Now()
			_ = run()
			elapsed := time.Since(start)
			perPoint := float64(elapsed.Nanoseconds()) / float64(nPoints*repeat)
			fmt.Fprintf(out, "%s: %d points x %d repeats in %v, %8.2f ns/point\n",
				pr.ip.Solution, nPoints, repeat, elapsed, perPoint)
			opts.Log.Debug("memory", "usage", utils.GetMemUsage())
			if counters {
				var cycles, instructions uint64
				if cycles, instructions, err = measureCounters(run); err != nil {
					// Counters are often unavailable in containers
					opts.Log.Warn("hardware counters unavailable", "error", err)
					return nil
				}
				fmt.Fprintf(out, "cycles/point = %8.2f, instructions/point = %8.2f\n",
					float64(cycles)/float64(nPoints*repeat), float64(instructions)/float64(nPoints*repeat))
			}
			return
		},
	}
	addInputFlag(cmd)
	cmd.Flags().IntP("numPoints", "n", 100000, "number of points, the input points are repeated to fill them")
	cmd.Flags().Int("repeat", 10, "number of bulk evaluations")
	cmd.Flags().String("profile", "", "write a pprof profile: cpu or mem")
	cmd.Flags().String("profilePath", ".", "directory for the profile")
	cmd.Flags().Bool("counters", false, "report hardware cycle and instruction counts (linux)")
	return cmd
}
