package convergence

import (
	"bytes"
	"encoding/csv"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/grmhd/analytic_solutions/GrMhd/alfven_wave"
	"github.com/notargets/grmhd/analytic_solutions/GrMhd/smooth_flow"
	"github.com/notargets/grmhd/hydro"
)

var steps = []float64{0.1, 0.05, 0.025, 0.0125}

func TestSmoothFlowConvergence(t *testing.T) {
	sf := smooth_flow.NewSmoothFlow(hydro.Vec3{0.1, 0.2, 0.3}, hydro.Vec3{2, -1, 0.5}, 1.25, 1.4, 0.35)
	cs := NewStudy("SmoothFlow", hydro.Vec3{0.3, -0.2, 0.7}, 0.45, steps)
	cs.Run(sf)
	require.Len(t, cs.Errors, len(steps))
	assert.InDelta(t, 2., cs.Orders[0], 0.05)
	assert.Greater(t, cs.MinOrder(), 1.9)
	// Constant fields are differenced exactly
	for _, n := range []int{1, 2, 3, 5, 6, 7, 8} {
		assert.True(t, math.IsNaN(cs.Orders[n]), hydro.ComponentLabels[n])
		for i := range steps {
			assert.Equal(t, 0., cs.Errors[i][n])
		}
	}
	// Errors shrink with the step
	for i := 1; i < len(steps); i++ {
		assert.Less(t, cs.Errors[i][0], cs.Errors[i-1][0])
	}
}

func TestAlfvenWaveConvergence(t *testing.T) {
	aw := alfven_wave.NewAlfvenWave(2.2, 1.3, 0.8, 4./3., 0.6, 0.15)
	cs := NewStudy("AlfvenWave", hydro.Vec3{0.4, -0.3, 1.7}, 0.9, steps)
	cs.Run(aw)
	for _, n := range []int{1, 2, 6, 7} { // transverse velocity and field
		assert.InDelta(t, 2., cs.Orders[n], 0.05, hydro.ComponentLabels[n])
	}
	for _, n := range []int{0, 3, 4, 5, 8} {
		assert.True(t, math.IsNaN(cs.Orders[n]), hydro.ComponentLabels[n])
	}
	var buf bytes.Buffer
	cs.Print(&buf)
	assert.Contains(t, buf.String(), "Title = AlfvenWave")
	assert.Contains(t, buf.String(), " rho: exact")
	assert.Equal(t, hydro.NumComponents+1, strings.Count(buf.String(), "\n"))
}

func TestWriteCSV(t *testing.T) {
	aw := alfven_wave.NewAlfvenWave(2.2, 1.3, 0.8, 4./3., 0.6, 0.15)
	cs := NewStudy("AlfvenWave", hydro.Vec3{0.4, -0.3, 1.7}, 0.9, steps)
	cs.Run(aw)
	var buf bytes.Buffer
	require.NoError(t, cs.WriteCSV(&buf, true))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(steps)+1)
	assert.Equal(t, []string{"Title", "h", "rho", "vx", "vy", "vz", "eps", "p", "Bx", "By", "Bz"}, records[0])
	assert.Equal(t, "AlfvenWave", records[1][0])
	assert.Equal(t, "1.000000e-01", records[1][1])
	assert.Equal(t, "0.000000e+00", records[1][2])
	assert.Len(t, records[4], 2+hydro.NumComponents)
}

func TestMinOrderAllExact(t *testing.T) {
	cs := &Study{}
	for n := range cs.Orders {
		cs.Orders[n] = math.NaN()
	}
	assert.True(t, math.IsInf(cs.MinOrder(), 1))
}
