package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// Series is a float64 slice with chainable helpers for composing synthetic
// target series in tests and examples.
type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = val
	}
	return Series(y)
}

// GenerateWaveY produces a sine wave over the row index with the given
// amplitude, period in steps, and phase offset in steps.
func GenerateWaveY(n int, amp, period, offset float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, amp*math.Sin(2.0*math.Pi/period*(float64(i)+offset)))
	}
	return Series(y)
}

func GenerateNoise(n int, scale float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rand.NormFloat64()*scale)
	}
	return Series(y)
}

// GenerateARY produces an autoregressive series driven by the given lag
// coefficients with gaussian noise. The first len(coef) values are noise
// only.
func GenerateARY(n int, coef []float64, noiseScale float64) Series {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		val := rand.NormFloat64() * noiseScale
		for l, c := range coef {
			if i-l-1 < 0 {
				break
			}
			val += c * y[i-l-1]
		}
		y[i] = val
	}
	return Series(y)
}
