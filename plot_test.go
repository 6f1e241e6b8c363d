package narx

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotFit(t *testing.T) {
	d := generateExampleDataset(t, 100)

	f, err := New(nil)
	require.Nil(t, err)
	require.Nil(t, f.Fit(d))

	path := filepath.Join(t.TempDir(), "fit.html")
	require.Nil(t, f.PlotFit(path))

	info, err := os.Stat(path)
	require.Nil(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestResidualSeriesSkipsNaN(t *testing.T) {
	res := &Results{
		Index:       []int{2, 3, 4, 5},
		Targets:     []float64{1, 2, 3, 4},
		Predictions: []float64{1.5, math.NaN(), 2.5, 4.5},
	}

	idx, lineData := residualSeries(res)

	// the NaN residual drops out together with its index so remaining points
	// keep their original time steps
	assert.Equal(t, []int{2, 4, 5}, idx)
	require.Len(t, lineData, 3)
	assert.Equal(t, -0.5, lineData[0].Value)
	assert.Equal(t, 0.5, lineData[1].Value)
	assert.Equal(t, -0.5, lineData[2].Value)
}

func TestPlotFitBeforeFit(t *testing.T) {
	f, err := New(nil)
	require.Nil(t, err)

	err = f.PlotFit(filepath.Join(t.TempDir(), "fit.html"))
	assert.ErrorIs(t, err, ErrUntrainedForecaster)
}
