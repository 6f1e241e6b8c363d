package lag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBuild(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5}
	x := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})

	testData := map[string]struct {
		y        []float64
		x        *mat.Dense
		order    int
		features [][]float64
		targets  []float64
		labels   []string
		index    []int
		err      error
	}{
		"invalid order": {
			y:     y,
			order: 0,
			err:   ErrInvalidOrder,
		},
		"negative order": {
			y:     y,
			order: -3,
			err:   ErrInvalidOrder,
		},
		"row mismatch": {
			y:     y,
			x:     mat.NewDense(3, 1, []float64{1, 2, 3}),
			order: 1,
			err:   ErrLenMismatch,
		},
		"order 1 with regressor": {
			y:     y,
			x:     x,
			order: 1,
			features: [][]float64{
				{1, 1},
				{2, 2},
				{3, 3},
				{4, 4},
			},
			targets: []float64{2, 3, 4, 5},
			labels:  []string{"y_lag1", "x0_lag1"},
			index:   []int{1, 2, 3, 4},
		},
		"order 2 with regressor": {
			y:     y,
			x:     x,
			order: 2,
			features: [][]float64{
				{2, 1, 2, 1},
				{3, 2, 3, 2},
				{4, 3, 4, 3},
			},
			targets: []float64{3, 4, 5},
			labels:  []string{"y_lag1", "y_lag2", "x0_lag1", "x0_lag2"},
			index:   []int{2, 3, 4},
		},
		"order 1 without regressor": {
			y:     y,
			order: 1,
			features: [][]float64{
				{1},
				{2},
				{3},
				{4},
			},
			targets: []float64{2, 3, 4, 5},
			labels:  []string{"y_lag1"},
			index:   []int{1, 2, 3, 4},
		},
		"order consumes all rows": {
			y:       y,
			x:       x,
			order:   5,
			targets: nil,
			labels:  []string{"y_lag1", "y_lag2", "y_lag3", "y_lag4", "y_lag5", "x0_lag1", "x0_lag2", "x0_lag3", "x0_lag4", "x0_lag5"},
			index:   nil,
		},
		"order beyond series length": {
			y:       []float64{1, 2},
			order:   7,
			targets: nil,
			labels:  []string{"y_lag1", "y_lag2", "y_lag3", "y_lag4", "y_lag5", "y_lag6", "y_lag7"},
			index:   nil,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			design, err := Build(td.y, td.x, td.order)
			if td.err != nil {
				assert.ErrorAs(t, err, &td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.targets, design.Targets)
			assert.Equal(t, td.labels, design.Labels)
			assert.Equal(t, td.index, design.Index)

			if len(td.features) == 0 {
				assert.Nil(t, design.Matrix)
				return
			}
			require.NotNil(t, design.Matrix)
			rows, cols := design.Matrix.Dims()
			require.Equal(t, len(td.features), rows)
			require.Equal(t, len(td.features[0]), cols)
			for i := 0; i < rows; i++ {
				assert.Equal(t, td.features[i], design.Matrix.RawRowView(i))
			}
		})
	}
}

func TestBuildDropsNaNRows(t *testing.T) {
	y := []float64{1, 2, math.NaN(), 4, 5, 6}

	design, err := Build(y, nil, 1)
	require.Nil(t, err)

	// rows referencing the NaN either as a target or as a lagged feature are
	// dropped
	assert.Equal(t, []float64{2, 5, 6}, design.Targets)
	assert.Equal(t, []int{1, 4, 5}, design.Index)
}

func TestBuildRowCountMonotonic(t *testing.T) {
	y := []float64{3, 1, 4, 1, 5}
	x := mat.NewDense(5, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
		7, 8,
		9, 10,
	})

	lastRows := len(y)
	for order := 1; order <= len(y)+2; order++ {
		design, err := Build(y, x, order)
		require.Nil(t, err)
		require.LessOrEqual(t, design.NumRows(), lastRows, "order %d", order)
		if order < len(y) {
			require.Equal(t, len(y)-order, design.NumRows(), "order %d", order)
			_, cols := design.Matrix.Dims()
			require.Equal(t, order+order*2, cols, "order %d", order)
		} else {
			require.Zero(t, design.NumRows(), "order %d", order)
		}
		lastRows = design.NumRows()
	}
}
