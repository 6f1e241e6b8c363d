package dataset

import (
	"errors"
	"time"

	"github.com/rickar/cal/v2"
	"gonum.org/v1/gonum/mat"
)

var ErrNoTimestamps = errors.New("dataset has no timestamps for calendar features")

// CalendarOptions selects which calendar indicator regressors to derive from
// the dataset timestamps.
type CalendarOptions struct {
	// Weekend adds a 0/1 column marking Saturdays and Sundays.
	Weekend bool

	// Holidays adds one 0/1 column per holiday marking the observed day of
	// that holiday in each timestamp's year.
	Holidays []*cal.Holiday
}

// WithCalendarFeatures returns a copy of the dataset with the selected
// calendar indicator columns appended to the regressor matrix. The receiver
// is left untouched so the session store only ever sees wholesale
// replacements.
func (d *Dataset) WithCalendarFeatures(opt CalendarOptions) (*Dataset, error) {
	if len(d.T) == 0 {
		return nil, ErrNoTimestamps
	}

	n := len(d.T)
	cols := make([][]float64, 0, 1+len(opt.Holidays))

	if opt.Weekend {
		weekend := make([]float64, n)
		for i, t := range d.T {
			switch t.Weekday() {
			case time.Saturday, time.Sunday:
				weekend[i] = 1.0
			}
		}
		cols = append(cols, weekend)
	}

	for _, hol := range opt.Holidays {
		indicator := make([]float64, n)
		for i, t := range d.T {
			_, observed := hol.Calc(t.Year())
			if observed.Month() == t.Month() && observed.Day() == t.Day() {
				indicator[i] = 1.0
			}
		}
		cols = append(cols, indicator)
	}

	next := d.Copy()
	if len(cols) == 0 {
		return next, nil
	}

	k := next.NumRegressors()
	augmented := mat.NewDense(n, k+len(cols), nil)
	if next.X != nil {
		for j := 0; j < k; j++ {
			augmented.SetCol(j, mat.Col(nil, j, next.X))
		}
	}
	for j, col := range cols {
		augmented.SetCol(k+j, col)
	}
	next.X = augmented
	return next, nil
}
