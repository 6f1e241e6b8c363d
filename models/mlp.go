package models

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultHiddenUnits  = 10
	DefaultEpochs       = 200
	DefaultLearningRate = 0.01
	DefaultSeed         = 1
)

var (
	ErrInvalidHiddenUnits  = errors.New("hidden units must be a positive integer")
	ErrInvalidEpochs       = errors.New("epochs must be a positive integer")
	ErrInvalidLearningRate = errors.New("learning rate must be positive")
)

// MLPOptions represents input options to train the feedforward network.
type MLPOptions struct {
	// HiddenUnits is the width of the single hidden layer.
	HiddenUnits int

	// Epochs is the number of passes over the training rows.
	Epochs int

	// LearningRate scales each stochastic gradient step.
	LearningRate float64

	// Seed primes the weight initialization so fits are reproducible.
	Seed uint64
}

// Validate runs basic validation on MLP options
func (o *MLPOptions) Validate() (*MLPOptions, error) {
	if o == nil {
		o = NewDefaultMLPOptions()
	}
	if o.HiddenUnits < 1 {
		return nil, fmt.Errorf("got %d hidden units, %w", o.HiddenUnits, ErrInvalidHiddenUnits)
	}
	if o.Epochs < 1 {
		return nil, fmt.Errorf("got %d epochs, %w", o.Epochs, ErrInvalidEpochs)
	}
	if o.LearningRate <= 0 {
		return nil, fmt.Errorf("got learning rate of %f, %w", o.LearningRate, ErrInvalidLearningRate)
	}
	return o, nil
}

// NewDefaultMLPOptions returns a default set of MLP training options
func NewDefaultMLPOptions() *MLPOptions {
	return &MLPOptions{
		HiddenUnits:  DefaultHiddenUnits,
		Epochs:       DefaultEpochs,
		LearningRate: DefaultLearningRate,
		Seed:         DefaultSeed,
	}
}

// MLPRegression is a single hidden layer feedforward network with a tanh
// hidden activation and a linear output, trained with per sample stochastic
// gradient descent. Features and target are standardized internally from the
// training data so the network tolerates raw input scales.
type MLPRegression struct {
	opt *MLPOptions

	// weights, w1 is [hidden][in]
	w1 [][]float64
	b1 []float64
	w2 []float64
	b2 float64

	featMean []float64
	featStd  []float64
	yMean    float64
	yStd     float64

	trained bool
}

// NewMLPRegression initializes an MLP model ready for fitting
func NewMLPRegression(opt *MLPOptions) (*MLPRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &MLPRegression{
		opt: opt,
	}, nil
}

// Fit trains the network on the given design matrix and target column.
func (m *MLPRegression) Fit(x, y mat.Matrix) error {
	if m.opt == nil {
		return ErrNoOptions
	}
	if x == nil {
		return ErrNoTrainingMatrix
	}
	if y == nil {
		return ErrNoTargetMatrix
	}

	rows, numFeat := x.Dims()
	ym, _ := y.Dims()
	if ym != rows {
		return fmt.Errorf("training data has %d rows and target has %d rows, %w", rows, ym, ErrTargetLenMismatch)
	}

	xScaled, yScaled := m.standardize(x, y)
	m.initWeights(numFeat)

	hidden := m.opt.HiddenUnits
	h := make([]float64, hidden)
	dz := make([]float64, hidden)

	for epoch := 0; epoch < m.opt.Epochs; epoch++ {
		var loss float64
		for i := 0; i < rows; i++ {
			row := xScaled[i]

			// forward pass
			for j := 0; j < hidden; j++ {
				z := m.b1[j]
				for f := 0; f < numFeat; f++ {
					z += m.w1[j][f] * row[f]
				}
				h[j] = math.Tanh(z)
			}
			pred := m.b2
			for j := 0; j < hidden; j++ {
				pred += m.w2[j] * h[j]
			}

			delta := pred - yScaled[i]
			loss += delta * delta

			// backward pass with an immediate gradient step
			lr := m.opt.LearningRate
			for j := 0; j < hidden; j++ {
				dz[j] = delta * m.w2[j] * (1.0 - h[j]*h[j])
				m.w2[j] -= lr * delta * h[j]
			}
			m.b2 -= lr * delta
			for j := 0; j < hidden; j++ {
				for f := 0; f < numFeat; f++ {
					m.w1[j][f] -= lr * dz[j] * row[f]
				}
				m.b1[j] -= lr * dz[j]
			}
		}

		if math.IsNaN(loss) || math.IsInf(loss, 0) {
			slog.Warn("mlp training diverged, stopping early", "epoch", epoch, "learning_rate", m.opt.LearningRate)
			break
		}
	}

	m.trained = true
	return nil
}

// Predict runs the fitted network over every row of the design matrix.
func (m *MLPRegression) Predict(x mat.Matrix) ([]float64, error) {
	if m.opt == nil {
		return nil, ErrNoOptions
	}
	if !m.trained {
		return nil, ErrUntrainedModel
	}
	if x == nil {
		return nil, ErrNoDesignMatrix
	}

	rows, numFeat := x.Dims()
	if numFeat != len(m.featMean) {
		return nil, fmt.Errorf("got %d features in design matrix, but expected %d, %w", numFeat, len(m.featMean), ErrFeatureLenMismatch)
	}

	hidden := m.opt.HiddenUnits
	res := make([]float64, rows)
	row := make([]float64, numFeat)
	for i := 0; i < rows; i++ {
		for f := 0; f < numFeat; f++ {
			row[f] = (x.At(i, f) - m.featMean[f]) / m.featStd[f]
		}
		pred := m.b2
		for j := 0; j < hidden; j++ {
			z := m.b1[j]
			for f := 0; f < numFeat; f++ {
				z += m.w1[j][f] * row[f]
			}
			pred += m.w2[j] * math.Tanh(z)
		}
		res[i] = pred*m.yStd + m.yMean
	}
	return res, nil
}

// Score computes the mean squared error of the fitted network over the given
// design matrix and target column.
func (m *MLPRegression) Score(x, y mat.Matrix) (float64, error) {
	if y == nil {
		return 0.0, ErrNoTargetMatrix
	}
	predicted, err := m.Predict(x)
	if err != nil {
		return 0.0, err
	}

	ym, _ := y.Dims()
	if ym != len(predicted) {
		return 0.0, fmt.Errorf("design matrix has %d rows and target has %d rows, %w", len(predicted), ym, ErrTargetLenMismatch)
	}

	var mse float64
	for i := 0; i < ym; i++ {
		diff := y.At(i, 0) - predicted[i]
		mse += diff * diff
	}
	mse /= float64(ym)
	return mse, nil
}

func (m *MLPRegression) standardize(x, y mat.Matrix) ([][]float64, []float64) {
	rows, numFeat := x.Dims()

	m.featMean = make([]float64, numFeat)
	m.featStd = make([]float64, numFeat)
	col := make([]float64, rows)
	for f := 0; f < numFeat; f++ {
		for i := 0; i < rows; i++ {
			col[i] = x.At(i, f)
		}
		mean, std := stat.MeanStdDev(col, nil)
		if std == 0 || math.IsNaN(std) {
			std = 1.0
		}
		m.featMean[f] = mean
		m.featStd[f] = std
	}

	yCol := make([]float64, rows)
	for i := 0; i < rows; i++ {
		yCol[i] = y.At(i, 0)
	}
	mean, std := stat.MeanStdDev(yCol, nil)
	if std == 0 || math.IsNaN(std) {
		std = 1.0
	}
	m.yMean = mean
	m.yStd = std

	xScaled := make([][]float64, rows)
	yScaled := make([]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, numFeat)
		for f := 0; f < numFeat; f++ {
			row[f] = (x.At(i, f) - m.featMean[f]) / m.featStd[f]
		}
		xScaled[i] = row
		yScaled[i] = (yCol[i] - m.yMean) / m.yStd
	}
	return xScaled, yScaled
}

func (m *MLPRegression) initWeights(numFeat int) {
	r := rand.New(rand.NewPCG(m.opt.Seed, 0))

	hidden := m.opt.HiddenUnits
	scale := math.Sqrt(1.0 / float64(numFeat))
	m.w1 = make([][]float64, hidden)
	m.b1 = make([]float64, hidden)
	for j := 0; j < hidden; j++ {
		m.w1[j] = make([]float64, numFeat)
		for f := 0; f < numFeat; f++ {
			m.w1[j][f] = r.NormFloat64() * scale
		}
	}

	scale = math.Sqrt(1.0 / float64(hidden))
	m.w2 = make([]float64, hidden)
	for j := 0; j < hidden; j++ {
		m.w2[j] = r.NormFloat64() * scale
	}
	m.b2 = 0.0
}
