package narx

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrResLenMismatch = errors.New("predicted and actual have different lengths")
	ErrEmptyPartition = errors.New("no rows in partition to score")
)

// Scores tracks the fit scores of a single partition
type Scores struct {
	MSE  float64 `json:"mean_squared_error"`
	MAPE float64 `json:"mean_average_percent_error"`
	R2   float64 `json:"r_squared"`
}

// NewScores calculates the fit scores for the rows selected by idx. Scoring
// is order independent in idx. An empty idx returns ErrEmptyPartition.
func NewScores(predicted, actual []float64, idx []int) (Scores, error) {
	mse, err := MSE(predicted, actual, idx)
	if err != nil {
		return Scores{}, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual, idx)
	if err != nil {
		return Scores{}, fmt.Errorf("unable to compute mean average percent error, %w", err)
	}
	rs, err := RSquared(predicted, actual, idx)
	if err != nil {
		return Scores{}, fmt.Errorf("unable to compute r-squared, %w", err)
	}

	return Scores{
		MSE:  mse,
		MAPE: mape,
		R2:   rs,
	}, nil
}

// naScores marks a partition that had no rows to score.
func naScores() Scores {
	return Scores{
		MSE:  math.NaN(),
		MAPE: math.NaN(),
		R2:   math.NaN(),
	}
}

// MSE computes the mean squared error over the rows selected by idx. A score
// of 0 means a perfect match with no errors. NaN valued rows are excluded
// from the mean and a partition with no scoreable rows left returns NaN.
func MSE(predicted, actual []float64, idx []int) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(idx) == 0 {
		return 0, ErrEmptyPartition
	}

	mse := 0.0
	var cnt int
	for _, i := range idx {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		mse += math.Pow(actual[i]-predicted[i], 2.0)
		cnt += 1
	}
	if cnt == 0 {
		return math.NaN(), nil
	}
	mse /= float64(cnt)
	return mse, nil
}

// MAPE calculates the mean average percent error over the rows selected by
// idx. A score of 0 means a perfect match with no errors. NaN valued rows
// and rows with a zero actual are excluded from the mean and a partition
// with no scoreable rows left returns NaN.
func MAPE(predicted, actual []float64, idx []int) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(idx) == 0 {
		return 0, ErrEmptyPartition
	}

	mape := 0.0
	var cnt int
	for _, i := range idx {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) || actual[i] == 0 {
			continue
		}
		mape += math.Abs((actual[i] - predicted[i]) / actual[i])
		cnt += 1
	}
	if cnt == 0 {
		return math.NaN(), nil
	}
	mape /= float64(cnt)
	return mape, nil
}

// RSquared computes the r squared value over the rows selected by idx where
// 1.0 means perfect fit and 0 represents no relationship
func RSquared(predicted, actual []float64, idx []int) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if len(idx) == 0 {
		return 0, ErrEmptyPartition
	}

	predictCopy := make([]float64, 0, len(idx))
	actualCopy := make([]float64, 0, len(idx))
	for _, i := range idx {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		predictCopy = append(predictCopy, predicted[i])
		actualCopy = append(actualCopy, actual[i])
	}
	r2 := stat.RSquaredFrom(predictCopy, actualCopy, nil)
	if math.IsNaN(r2) {
		return 1.0, nil
	}
	return r2, nil
}
