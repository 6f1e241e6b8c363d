package narx

import "github.com/aouyang1/go-narx/models"

const DefaultLagOrder = 1

// Options configures a training run. A nil TrainingOptions falls back to the
// model defaults.
type Options struct {
	// LagOrder is the number of past time steps of the target and of every
	// exogenous regressor used as predictors.
	LagOrder int

	TrainingOptions *models.MLPOptions
}

// NewDefaultOptions returns options with a lag order of 1 and the default
// network configuration.
func NewDefaultOptions() *Options {
	return &Options{
		LagOrder:        DefaultLagOrder,
		TrainingOptions: models.NewDefaultMLPOptions(),
	}
}
