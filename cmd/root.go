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
	"log/slog"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ValidFormats = []string{"text", "csv"}

// RootOptions carries the persistent settings shared by every sub command.
// Values come from flags, GRMHD_* environment variables or the config file,
// in that order of precedence.
type RootOptions struct {
	ConfigFile string
	Log        *slog.Logger
	v          *viper.Viper
}

func (opts *RootOptions) Verbose() bool  { return opts.v.GetBool("verbose") }
func (opts *RootOptions) Format() string { return opts.v.GetString("format") }
func (opts *RootOptions) Parallel() int  { return opts.v.GetInt("parallel") }

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{
		v:   viper.New(),
		Log: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	cmd := &cobra.Command{
		Use:   "grmhd",
		Short: "Reference values for analytic GRMHD solutions",
		Long: `
Evaluates closed form solutions of the relativistic MHD equations, the smooth
density wave and the circularly polarized Alfven wave, together with their
exact time derivatives, for use as ground truth when testing a solver.

grmhd evaluate -I input.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if err = initConfig(opts); err != nil {
				return
			}
			level := slog.LevelInfo
			if opts.Verbose() {
				level = slog.LevelDebug
			}
			opts.Log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			if used := opts.v.ConfigFileUsed(); used != "" {
				opts.Log.Debug("using config file", "file", used)
			}
			if !isValidFormat(opts.Format()) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format(), ValidFormats)
			}
			return
		},
	}
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default is $HOME/.grmhd.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	cmd.PersistentFlags().String("format", "text", "output format (text|csv)")
	cmd.PersistentFlags().IntP("parallel", "p", 0, "number of goroutines for bulk evaluation, 0 = one per CPU")
	for _, name := range []string{"verbose", "format", "parallel"} {
		if err := opts.v.BindPFlag(name, cmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	cmd.AddCommand(NewEvaluateCommand(opts))
	cmd.AddCommand(NewConvergeCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))
	cmd.AddCommand(NewPlotCommand(opts))
	return cmd
}

// Execute adds all child commands to the root command and runs it
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads in the config file and ENV variables if set
func initConfig(opts *RootOptions) (err error) {
	v := opts.v
	v.SetEnvPrefix("GRMHD")
	v.AutomaticEnv()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err = v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", opts.ConfigFile, err)
		}
		return
	}
	var home string
	if home, err = homedir.Dir(); err != nil {
		return
	}
	v.AddConfigPath(home)
	v.SetConfigName(".grmhd")
	v.SetConfigType("yaml")
	// A missing default config is not an error
	_ = v.ReadInConfig()
	return nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
