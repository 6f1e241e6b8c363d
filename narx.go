// Package narx trains a feedforward neural network on a lagged
// autoregressive design with exogenous inputs and reports per partition fit
// scores. The target series and regressors are turned into a lagged design,
// split into contiguous train/validation/test partitions, fit on the train
// rows, and scored on all three.
package narx

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-narx/dataset"
	"github.com/aouyang1/go-narx/lag"
	"github.com/aouyang1/go-narx/models"
	"github.com/aouyang1/go-narx/split"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmptyDataset        = errors.New("no dataset or uninitialized")
	ErrInsufficientData    = errors.New("lag order leaves no rows to train on")
	ErrUntrainedForecaster = errors.New("forecaster has not been trained yet")
)

// Forecaster fits a NARX model and holds the results of the last run. All
// derived state is rebuilt from scratch on every Fit call.
type Forecaster struct {
	opt *Options

	model      *models.MLPRegression
	fitResults *Results
}

// New creates a new instance of a Forecaster using the provided options. If
// no options are provided a default is used.
func New(opt *Options) (*Forecaster, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if opt.LagOrder < 1 {
		return nil, fmt.Errorf("got lag order of %d, %w", opt.LagOrder, lag.ErrInvalidOrder)
	}

	trainOpt, err := opt.TrainingOptions.Validate()
	if err != nil {
		return nil, err
	}
	opt.TrainingOptions = trainOpt

	return &Forecaster{opt: opt}, nil
}

// Fit builds the lagged design from the input dataset, trains the network on
// the train partition, and scores predictions over all three partitions. Any
// previously fit model is discarded.
func (f *Forecaster) Fit(d *dataset.Dataset) error {
	if d == nil || d.NumRows() == 0 {
		return ErrEmptyDataset
	}

	design, err := lag.Build(d.Y, d.X, f.opt.LagOrder)
	if err != nil {
		return fmt.Errorf("unable to build lagged design, %w", err)
	}
	if design.NumRows() == 0 {
		return fmt.Errorf(
			"lag order of %d leaves no rows from %d observations, %w",
			f.opt.LagOrder, d.NumRows(), ErrInsufficientData,
		)
	}

	parts := split.Split(design.NumRows())
	if len(parts.Train) == 0 {
		return fmt.Errorf("train partition, %w", ErrEmptyPartition)
	}

	model, err := models.NewMLPRegression(f.opt.TrainingOptions)
	if err != nil {
		return fmt.Errorf("unable to initialize network, %w", err)
	}

	xTrain, yTrain := subset(design, parts.Train)
	if err := model.Fit(xTrain, yTrain); err != nil {
		return fmt.Errorf("unable to fit network, %w", err)
	}

	predictions, err := model.Predict(design.Matrix)
	if err != nil {
		return fmt.Errorf("unable to predict over lagged design, %w", err)
	}

	scores, err := newPartitionScores(predictions, design.Targets, parts)
	if err != nil {
		return err
	}

	f.model = model
	f.fitResults = &Results{
		Index:       design.Index,
		Targets:     design.Targets,
		Predictions: predictions,
		Partitions:  parts,
		Scores:      scores,
	}
	return nil
}

func newPartitionScores(predicted, actual []float64, parts split.Partitions) (PartitionScores, error) {
	train, err := NewScores(predicted, actual, parts.Train)
	if err != nil {
		return PartitionScores{}, fmt.Errorf("unable to score train partition, %w", err)
	}

	validation, err := NewScores(predicted, actual, parts.Validation)
	if err != nil {
		if !errors.Is(err, ErrEmptyPartition) {
			return PartitionScores{}, fmt.Errorf("unable to score validation partition, %w", err)
		}
		validation = naScores()
	}

	test, err := NewScores(predicted, actual, parts.Test)
	if err != nil {
		if !errors.Is(err, ErrEmptyPartition) {
			return PartitionScores{}, fmt.Errorf("unable to score test partition, %w", err)
		}
		test = naScores()
	}

	return PartitionScores{
		Train:      train,
		Validation: validation,
		Test:       test,
	}, nil
}

// subset gathers the design rows selected by idx into a training matrix and
// target column.
func subset(design *lag.Design, idx []int) (mat.Matrix, mat.Matrix) {
	_, numFeat := design.Matrix.Dims()
	x := mat.NewDense(len(idx), numFeat, nil)
	y := mat.NewDense(len(idx), 1, nil)
	for i, row := range idx {
		x.SetRow(i, design.Matrix.RawRowView(row))
		y.Set(i, 0, design.Targets[row])
	}
	return x, y
}

// Results returns the results of the last fit which includes targets,
// predictions, and per partition scores.
func (f *Forecaster) Results() (*Results, error) {
	if f.fitResults == nil {
		return nil, ErrUntrainedForecaster
	}
	return f.fitResults, nil
}

// Model returns the fitted network from the last run.
func (f *Forecaster) Model() (models.Model, error) {
	if f.model == nil {
		return nil, ErrUntrainedForecaster
	}
	return f.model, nil
}
