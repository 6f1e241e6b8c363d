package narx

import "github.com/aouyang1/go-narx/split"

// Results holds the outcome of a single training run. Targets and
// Predictions are aligned with each other and with Index, which maps each
// row back to its original time step in the imported series.
type Results struct {
	Index       []int            `json:"index"`
	Targets     []float64        `json:"targets"`
	Predictions []float64        `json:"predictions"`
	Partitions  split.Partitions `json:"partitions"`
	Scores      PartitionScores  `json:"scores"`
}

// PartitionScores holds the fit scores per partition. Validation and Test
// are NaN valued when their partition had no rows.
type PartitionScores struct {
	Train      Scores `json:"train"`
	Validation Scores `json:"validation"`
	Test       Scores `json:"test"`
}
