// Package lag builds the lagged design matrix for a NARX model. Each
// retained row pairs the target at time t with the target and exogenous
// regressor values at times t-1 through t-L.
package lag

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrInvalidOrder = errors.New("lag order must be a positive integer")
	ErrLenMismatch  = errors.New("regressor matrix has a different number of rows than observations")
)

// Design is the lagged dataset derived from a target series and regressor
// matrix. Matrix holds one row per retained time step with columns ordered
// as all y lags first (lag 1 through L) followed by one block of regressor
// columns per lag. Index maps each retained row back to its original time
// step. Matrix is nil when no row survives the lag cutoff.
type Design struct {
	Matrix  *mat.Dense
	Targets []float64
	Labels  []string
	Index   []int
}

// NumRows returns the number of retained rows in the design.
func (d *Design) NumRows() int {
	return len(d.Targets)
}

// Build constructs the lagged design from a target series and an optional
// regressor matrix. For each lag 1..order a copy of y and of every regressor
// column is shifted forward with NaN padding, and any row containing a NaN
// in its features or target is dropped. A lag order of at least the series
// length yields an empty design.
func Build(y []float64, x *mat.Dense, order int) (*Design, error) {
	if order < 1 {
		return nil, fmt.Errorf("got lag order of %d, %w", order, ErrInvalidOrder)
	}

	n := len(y)
	var k int
	if x != nil {
		m, cols := x.Dims()
		if m != n {
			return nil, fmt.Errorf(
				"observations have length of %d, but regressor matrix has %d rows, %w",
				n, m, ErrLenMismatch,
			)
		}
		k = cols
	}

	numFeat := order + order*k
	cols := make([][]float64, 0, numFeat)
	labels := make([]string, 0, numFeat)

	for l := 1; l <= order; l++ {
		cols = append(cols, shift(y, l))
		labels = append(labels, fmt.Sprintf("y_lag%d", l))
	}
	for l := 1; l <= order; l++ {
		for j := 0; j < k; j++ {
			cols = append(cols, shift(mat.Col(nil, j, x), l))
			labels = append(labels, fmt.Sprintf("x%d_lag%d", j, l))
		}
	}

	d := &Design{
		Labels: labels,
	}

	rows := make([]float64, 0, n*numFeat)
	for t := 0; t < n; t++ {
		if math.IsNaN(y[t]) {
			continue
		}
		keep := true
		for _, col := range cols {
			if math.IsNaN(col[t]) {
				keep = false
				break
			}
		}
		if !keep {
			continue
		}
		for _, col := range cols {
			rows = append(rows, col[t])
		}
		d.Targets = append(d.Targets, y[t])
		d.Index = append(d.Index, t)
	}

	if len(d.Targets) > 0 {
		d.Matrix = mat.NewDense(len(d.Targets), numFeat, rows)
	}
	return d, nil
}

// shift returns a copy of src delayed by l steps with the first l entries
// padded with NaN.
func shift(src []float64, l int) []float64 {
	out := make([]float64, len(src))
	for i := 0; i < l && i < len(src); i++ {
		out[i] = math.NaN()
	}
	if l < len(src) {
		copy(out[l:], src[:len(src)-l])
	}
	return out
}
