package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	input := []float64{1, 2, 3}
	ideal := []float64{0.5}

	r := NewRecord(input, ideal)
	assert.Equal(t, []float64{1, 2, 3}, r.Input())
	assert.Equal(t, []float64{0.5}, r.Ideal())

	// the record keeps its own copies
	input[0] = 10
	ideal[0] = 10
	assert.Equal(t, []float64{1, 2, 3}, r.Input())
	assert.Equal(t, []float64{0.5}, r.Ideal())
}

func TestSplit(t *testing.T) {
	records := []Record{
		NewRecord([]float64{1, 1}, []float64{0}),
		NewRecord([]float64{2, 2}, []float64{1}),
	}
	x, y := Split(records)
	assert.Equal(t, [][]float64{{1, 1}, {2, 2}}, x)
	assert.Equal(t, [][]float64{{0}, {1}}, y)
}
