// Package models holds the supervised learning capability used to fit the
// lagged NARX design. The orchestration layer only depends on the Model
// interface so the numeric backend can be swapped out or stubbed in tests.
package models

import (
	"gonum.org/v1/gonum/mat"
)

type Model interface {
	Fit(x, y mat.Matrix) error
	Predict(x mat.Matrix) ([]float64, error)
	Score(x, y mat.Matrix) (float64, error)
}
