package encoding

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	low  = 0.0
	high = 1.0
)

// Equilateral encodes class indices as the vertices of a simplex,
// so that all classes are at the same distance from each other.
// n classes are encoded with n-1 coordinates in the range [0,1].
type Equilateral struct {
	matrix [][]float64
}

// NewEquilateral creates the encoding for the given number of classes.
func NewEquilateral(classes int) (*Equilateral, error) {
	if classes < 2 {
		return nil, fmt.Errorf("equilateral encoding needs at least 2 classes: %d", classes)
	}
	return &Equilateral{
		matrix: matrix(classes),
	}, nil
}

// Classes returns the number of encoded classes.
func (e *Equilateral) Classes() int {
	return len(e.matrix)
}

// Encode returns the encoding for the given class index.
// The returned slice is shared and must not be modified.
func (e *Equilateral) Encode(index int) []float64 {
	return e.matrix[index]
}

// Decode returns the class whose encoding is closest to the given vector.
// On ties the lowest index wins.
// It returns -1 if no distance can be compared e.g. for NaN values.
func (e *Equilateral) Decode(v []float64) int {
	min := math.MaxFloat64
	index := -1
	for i, row := range e.matrix {
		d := floats.Distance(v, row, 2)
		if d < min {
			min = d
			index = i
		}
	}
	return index
}

func matrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n-1)
	}

	m[0][0] = -1
	m[1][0] = 1

	for c := 2; c < n; c++ {
		f := float64(c)
		scale := math.Sqrt(f*f-1) / f
		for j := 0; j < c; j++ {
			for k := 0; k < c-1; k++ {
				m[j][k] *= scale
			}
		}
		for j := 0; j < c; j++ {
			m[j][c-1] = -1 / f
		}
		for k := 0; k < c-1; k++ {
			m[c][k] = 0
		}
		m[c][c-1] = 1
	}

	// from [-1,1] to [0,1]
	for _, row := range m {
		for i, v := range row {
			row[i] = ((v+1)/2)*(high-low) + low
		}
	}
	return m
}
