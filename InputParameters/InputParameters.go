package InputParameters

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/grmhd/analytic_solutions/GrMhd"
	"github.com/notargets/grmhd/analytic_solutions/GrMhd/alfven_wave"
	"github.com/notargets/grmhd/analytic_solutions/GrMhd/smooth_flow"
	"github.com/notargets/grmhd/hydro"
)

var (
	ErrUnknownSolution = errors.New("unknown solution")
	ErrOutOfBounds     = errors.New("option out of bounds")
	ErrNoPoints        = errors.New("no sample points")
)

type SolutionType uint8

const (
	SmoothFlowSolution SolutionType = iota
	AlfvenWaveSolution
)

var SolutionNameMap = map[string]SolutionType{
	"smoothflow":  SmoothFlowSolution,
	"smooth":      SmoothFlowSolution,
	"alfvenwave":  AlfvenWaveSolution,
	"alfven":      AlfvenWaveSolution,
	"alfven_wave": AlfvenWaveSolution,
	"smooth_flow": SmoothFlowSolution,
}

func NewSolutionType(label string) (st SolutionType, err error) {
	var ok bool
	if st, ok = SolutionNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("%w: %q", ErrUnknownSolution, label)
	}
	return
}

func (st SolutionType) String() string {
	switch st {
	case SmoothFlowSolution:
		return "SmoothFlow"
	case AlfvenWaveSolution:
		return "AlfvenWave"
	}
	return fmt.Sprintf("SolutionType(%d)", st)
}

// Option names follow the analytic solution options of the solver under test
type SmoothFlowOptions struct {
	MeanVelocity      [3]float64 `json:"MeanVelocity"`
	WaveVector        [3]float64 `json:"WaveVector"`
	Pressure          float64    `json:"Pressure"`
	AdiabaticExponent float64    `json:"AdiabaticExponent"`
	PerturbationSize  float64    `json:"PerturbationSize"`
}

type AlfvenWaveOptions struct {
	Wavenumber         float64 `json:"Wavenumber"`
	Pressure           float64 `json:"Pressure"`
	RestMassDensity    float64 `json:"RestMassDensity"`
	AdiabaticExponent  float64 `json:"AdiabaticExponent"`
	BackgroundMagField float64 `json:"BackgroundMagField"`
	PerturbationSize   float64 `json:"PerturbationSize"`
}

// SampleLine is NumPoints equally spaced points from Start to End inclusive
type SampleLine struct {
	Start     [3]float64 `json:"Start"`
	End       [3]float64 `json:"End"`
	NumPoints int        `json:"NumPoints"`
}

// Parameters obtained from the YAML input file
type InputParametersGRMHD struct {
	Title      string             `json:"Title"`
	Solution   string             `json:"Solution"`
	Time       float64            `json:"Time"`
	SmoothFlow *SmoothFlowOptions `json:"SmoothFlow,omitempty"`
	AlfvenWave *AlfvenWaveOptions `json:"AlfvenWave,omitempty"`
	Sample     *SampleLine        `json:"Sample,omitempty"`
	Points     [][3]float64       `json:"Points,omitempty"`
}

func (ip *InputParametersGRMHD) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersGRMHD) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t= Solution\n", ip.Solution)
	fmt.Fprintf(w, "%8.5f\t\t= Time\n", ip.Time)
	if so := ip.SmoothFlow; so != nil {
		fmt.Fprintf(w, "%v\t= MeanVelocity\n", so.MeanVelocity)
		fmt.Fprintf(w, "%v\t= WaveVector\n", so.WaveVector)
		fmt.Fprintf(w, "%8.5f\t\t= Pressure\n", so.Pressure)
		fmt.Fprintf(w, "%8.5f\t\t= AdiabaticExponent\n", so.AdiabaticExponent)
		fmt.Fprintf(w, "%8.5f\t\t= PerturbationSize\n", so.PerturbationSize)
	}
	if ao := ip.AlfvenWave; ao != nil {
		fmt.Fprintf(w, "%8.5f\t\t= Wavenumber\n", ao.Wavenumber)
		fmt.Fprintf(w, "%8.5f\t\t= Pressure\n", ao.Pressure)
		fmt.Fprintf(w, "%8.5f\t\t= RestMassDensity\n", ao.RestMassDensity)
		fmt.Fprintf(w, "%8.5f\t\t= AdiabaticExponent\n", ao.AdiabaticExponent)
		fmt.Fprintf(w, "%8.5f\t\t= BackgroundMagField\n", ao.BackgroundMagField)
		fmt.Fprintf(w, "%8.5f\t\t= PerturbationSize\n", ao.PerturbationSize)
	}
	if sl := ip.Sample; sl != nil {
		fmt.Fprintf(w, "%v -> %v, [%d]\t= Sample\n", sl.Start, sl.End, sl.NumPoints)
	}
	if len(ip.Points) != 0 {
		fmt.Fprintf(w, "[%d]\t\t\t= Points\n", len(ip.Points))
	}
}

func outOfBounds(name string, val float64, bound string) error {
	return fmt.Errorf("%w: %s = %v, must be %s", ErrOutOfBounds, name, val, bound)
}

// Validate checks option bounds. The evaluators themselves accept anything.
func (ip *InputParametersGRMHD) Validate() (err error) {
	var st SolutionType
	if st, err = NewSolutionType(ip.Solution); err != nil {
		return
	}
	switch st {
	case SmoothFlowSolution:
		so := ip.SmoothFlow
		if so == nil {
			return fmt.Errorf("%w: missing SmoothFlow options", ErrOutOfBounds)
		}
		switch {
		case so.Pressure < 0:
			return outOfBounds("Pressure", so.Pressure, ">= 0")
		case so.AdiabaticExponent <= 1:
			return outOfBounds("AdiabaticExponent", so.AdiabaticExponent, "> 1")
		case so.PerturbationSize < -1 || so.PerturbationSize > 1:
			return outOfBounds("PerturbationSize", so.PerturbationSize, "within [-1, 1]")
		}
	case AlfvenWaveSolution:
		ao := ip.AlfvenWave
		if ao == nil {
			return fmt.Errorf("%w: missing AlfvenWave options", ErrOutOfBounds)
		}
		switch {
		case ao.Pressure < 0:
			return outOfBounds("Pressure", ao.Pressure, ">= 0")
		case ao.RestMassDensity <= 0:
			return outOfBounds("RestMassDensity", ao.RestMassDensity, "> 0")
		case ao.AdiabaticExponent <= 1:
			return outOfBounds("AdiabaticExponent", ao.AdiabaticExponent, "> 1")
		case ao.BackgroundMagField == 0:
			return outOfBounds("BackgroundMagField", ao.BackgroundMagField, "non zero")
		}
	}
	if sl := ip.Sample; sl != nil && sl.NumPoints < 1 {
		return fmt.Errorf("%w: Sample.NumPoints = %d", ErrNoPoints, sl.NumPoints)
	}
	if ip.Sample == nil && len(ip.Points) == 0 {
		return ErrNoPoints
	}
	return
}

func (ip *InputParametersGRMHD) NewSolution() (sol GrMhd.AnalyticSolution, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	st, _ := NewSolutionType(ip.Solution)
	switch st {
	case SmoothFlowSolution:
		so := ip.SmoothFlow
		sol = smooth_flow.NewSmoothFlow(so.MeanVelocity, so.WaveVector,
			so.Pressure, so.AdiabaticExponent, so.PerturbationSize)
	case AlfvenWaveSolution:
		ao := ip.AlfvenWave
		sol = alfven_wave.NewAlfvenWave(ao.Wavenumber, ao.Pressure, ao.RestMassDensity,
			ao.AdiabaticExponent, ao.BackgroundMagField, ao.PerturbationSize)
	}
	return
}

// SamplePoints returns the explicit Points followed by the Sample line, one
// point per row
func (ip *InputParametersGRMHD) SamplePoints() (X *mat.Dense, err error) {
	var (
		N = len(ip.Points)
	)
	if ip.Sample != nil {
		N += ip.Sample.NumPoints
	}
	if N < 1 {
		err = ErrNoPoints
		return
	}
	X = mat.NewDense(N, 3, nil)
	for i, pt := range ip.Points {
		X.SetRow(i, pt[:])
	}
	if sl := ip.Sample; sl != nil {
		var (
			start, end = hydro.Vec3(sl.Start), hydro.Vec3(sl.End)
			delta      = end.Sub(start)
			offset     = len(ip.Points)
		)
		for i := 0; i < sl.NumPoints; i++ {
			var s float64
			if sl.NumPoints > 1 {
				s = float64(i) / float64(sl.NumPoints-1)
			}
			X.SetRow(offset+i, start.Add(delta.Scale(s)).Slice())
		}
	}
	return
}
