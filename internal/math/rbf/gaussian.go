package rbf

import "math"

// Gaussian is a gaussian radial basis function.
// It does not own its parameters, it reads the width and the centers
// from the long term memory of the network it belongs to.
type Gaussian struct {
	dimensions  int
	indexWidth  int
	indexCenter int
	memory      func() []float64
}

// newGaussian creates a gaussian view at the given index of the memory.
// The width is at the index and the centers follow it.
func newGaussian(dimensions int, index int, memory func() []float64) Gaussian {
	return Gaussian{
		dimensions:  dimensions,
		indexWidth:  index,
		indexCenter: index + 1,
		memory:      memory,
	}
}

// Width returns the current width of the function.
func (g Gaussian) Width() float64 {
	return g.memory()[g.indexWidth]
}

// Centers returns the current centers of the function.
// The returned slice shares the network memory.
func (g Gaussian) Centers() []float64 {
	return g.memory()[g.indexCenter : g.indexCenter+g.dimensions]
}

// Evaluate evaluates the function for the given (weighted) input.
// NOTE : a zero width is not guarded against, it results in exp(-Inf) or NaN.
func (g Gaussian) Evaluate(x []float64) float64 {
	p := g.memory()
	width := p[g.indexWidth]
	value := 0.0
	for i := 0; i < g.dimensions; i++ {
		d := x[i] - p[g.indexCenter+i]
		// no factor 2 on the width, e.g. not (2 * width * width)
		value += d * d / (width * width)
	}
	return math.Exp(-value)
}
