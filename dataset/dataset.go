// Package dataset holds the observations used to train a NARX model. A
// Dataset pairs a univariate target series with an optional matrix of
// exogenous regressors aligned row for row.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoData          = errors.New("no observations in dataset")
	ErrMissingY        = errors.New("file is missing the y field")
	ErrMissingX        = errors.New("file is missing the x field")
	ErrLenMismatch     = errors.New("regressor matrix has a different number of rows than observations")
	ErrRaggedMatrix    = errors.New("regressor matrix rows have inconsistent lengths")
	ErrTimeLenMismatch = errors.New("timestamps have a different length than observations")
)

// Dataset represents a target series with exogenous regressors. Y and X must
// have the same number of rows. X may be nil when there are no regressors.
// T is optional and only used to derive calendar regressors.
type Dataset struct {
	Y []float64
	X *mat.Dense
	T []time.Time
}

// New returns a Dataset given a target series and an optional regressor
// matrix, validating that both are row aligned.
func New(y []float64, x *mat.Dense) (*Dataset, error) {
	if len(y) == 0 {
		return nil, ErrNoData
	}
	if x != nil {
		m, _ := x.Dims()
		if m != len(y) {
			return nil, fmt.Errorf(
				"observations have length of %d, but regressor matrix has %d rows, %w",
				len(y), m, ErrLenMismatch,
			)
		}
	}

	ySeries := make([]float64, len(y))
	copy(ySeries, y)
	d := &Dataset{
		Y: ySeries,
	}
	if x != nil {
		d.X = mat.DenseCopyOf(x)
	}
	return d, nil
}

// NumRows returns the number of time steps held in the dataset.
func (d *Dataset) NumRows() int {
	return len(d.Y)
}

// NumRegressors returns the number of exogenous regressor columns.
func (d *Dataset) NumRegressors() int {
	if d.X == nil {
		return 0
	}
	_, k := d.X.Dims()
	return k
}

func (d *Dataset) Copy() *Dataset {
	ySeries := make([]float64, len(d.Y))
	copy(ySeries, d.Y)
	next := &Dataset{
		Y: ySeries,
	}
	if d.X != nil {
		next.X = mat.DenseCopyOf(d.X)
	}
	if d.T != nil {
		tSeries := make([]time.Time, len(d.T))
		copy(tSeries, d.T)
		next.T = tSeries
	}
	return next
}

type fileFormat struct {
	Y *[]float64   `json:"y"`
	X *[][]float64 `json:"x"`
	T []string     `json:"t"`
}

// Load reads a dataset from a JSON file containing a named numeric vector
// "y" and a named numeric matrix "x". Both fields are required though "x"
// may be an empty array when there are no exogenous regressors. An optional
// "t" field of RFC3339 timestamps enables calendar regressors.
func Load(path string) (*Dataset, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read dataset file, %w", err)
	}

	var ff fileFormat
	if err := json.Unmarshal(bytes, &ff); err != nil {
		return nil, fmt.Errorf("unable to parse dataset file, %w", err)
	}
	if ff.Y == nil {
		return nil, ErrMissingY
	}
	if ff.X == nil {
		return nil, ErrMissingX
	}

	y := *ff.Y
	if len(y) == 0 {
		return nil, ErrNoData
	}

	x, err := parseRegressors(*ff.X, len(y))
	if err != nil {
		return nil, err
	}

	d, err := New(y, x)
	if err != nil {
		return nil, err
	}

	if len(ff.T) > 0 {
		if len(ff.T) != len(y) {
			return nil, fmt.Errorf(
				"observations have length of %d, but timestamps have length of %d, %w",
				len(y), len(ff.T), ErrTimeLenMismatch,
			)
		}
		t := make([]time.Time, 0, len(ff.T))
		for i, ts := range ff.T {
			parsed, err := time.Parse(time.RFC3339, ts)
			if err != nil {
				return nil, fmt.Errorf("unable to parse timestamp at %d, %w", i, err)
			}
			t = append(t, parsed)
		}
		d.T = t
	}
	return d, nil
}

func parseRegressors(rows [][]float64, n int) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows) != n {
		return nil, fmt.Errorf(
			"observations have length of %d, but regressor matrix has %d rows, %w",
			n, len(rows), ErrLenMismatch,
		)
	}

	k := len(rows[0])
	for i, row := range rows {
		if len(row) != k {
			return nil, fmt.Errorf("row %d has %d columns, but expected %d, %w", i, len(row), k, ErrRaggedMatrix)
		}
	}
	if k == 0 {
		return nil, nil
	}

	obs := make([]float64, 0, n*k)
	for _, row := range rows {
		obs = append(obs, row...)
	}
	return mat.NewDense(n, k, obs), nil
}
