package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCalculator(t *testing.T) {

	type test struct {
		actual [][]float64
		ideal  [][]float64
		count  int
		mse    float64
	}

	tests := map[string]test{
		"unit": {
			actual: [][]float64{{1, 1}},
			ideal:  [][]float64{{0, 0}},
			count:  2,
			mse:    1,
		},
		"exact": {
			actual: [][]float64{{0.5, 0.25}, {1, 0}},
			ideal:  [][]float64{{0.5, 0.25}, {1, 0}},
			count:  4,
			mse:    0,
		},
		"mixed": {
			actual: [][]float64{{1, 2, 3}, {0, 0, 0}},
			ideal:  [][]float64{{1, 2, 5}, {1, -1, 0}},
			count:  6,
			mse:    1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			calc := new(ErrorCalculator)
			// left overs from a previous pass
			calc.UpdateError([]float64{10}, []float64{0})
			calc.Clear()
			for i := range tt.actual {
				calc.UpdateError(tt.actual[i], tt.ideal[i])
			}
			assert.Equal(t, tt.count, calc.Count())
			assert.Equal(t, tt.mse, calc.Calculate())
		})
	}
}

func TestErrorCalculator_Empty(t *testing.T) {
	calc := new(ErrorCalculator)
	calc.Clear()
	assert.Equal(t, 0, calc.Count())
	assert.True(t, math.IsNaN(calc.Calculate()))
}
