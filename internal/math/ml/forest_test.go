package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForest(t *testing.T) {
	var x [][]float64
	var y []int
	for i := 0; i < 50; i++ {
		f := float64(i) / 50
		x = append(x, []float64{f * 0.2, 0.1 + f*0.1})
		y = append(y, 0)
		x = append(x, []float64{0.8 + f*0.2, 0.9 - f*0.1})
		y = append(y, 1)
	}

	forest := NewForest(50)
	_, err := forest.Predict(x[0])
	assert.Error(t, err)

	features, err := forest.Train(x, y)
	require.NoError(t, err)
	assert.Equal(t, 2, len(features))

	c, err := forest.Predict([]float64{0.1, 0.15})
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = forest.Predict([]float64{0.9, 0.85})
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

func TestForest_Misaligned(t *testing.T) {
	forest := NewForest(10)
	_, err := forest.Train([][]float64{{1}}, []int{})
	assert.Error(t, err)
	_, err = forest.Train(nil, nil)
	assert.Error(t, err)
}
