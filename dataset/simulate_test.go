package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConstY(t *testing.T) {
	y := GenerateConstY(3, 4.2)
	assert.Equal(t, Series([]float64{4.2, 4.2, 4.2}), y)
}

func TestGenerateWaveY(t *testing.T) {
	y := GenerateWaveY(100, 2.5, 20.0, 0.0)
	require.Len(t, y, 100)
	for i, val := range y {
		assert.LessOrEqual(t, val, 2.5, "index %d", i)
		assert.GreaterOrEqual(t, val, -2.5, "index %d", i)
	}
	assert.Zero(t, y[0])
}

func TestSeriesAdd(t *testing.T) {
	y := GenerateConstY(4, 1.0).
		Add(GenerateConstY(4, 2.0)).
		Add(GenerateWaveY(4, 0.0, 10.0, 0.0))
	assert.Equal(t, Series([]float64{3, 3, 3, 3}), y)
}

func TestGenerateARY(t *testing.T) {
	y := GenerateARY(50, []float64{0.5, -0.2}, 0.1)
	require.Len(t, y, 50)
}
