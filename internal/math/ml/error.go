package ml

// ErrorCalculator accumulates the squared error between actual and ideal vectors.
type ErrorCalculator struct {
	sum   float64
	count int
}

// Clear resets the accumulated error.
func (e *ErrorCalculator) Clear() {
	e.sum = 0
	e.count = 0
}

// UpdateError adds the squared error of the given pair.
// Both vectors are expected to have the same length.
func (e *ErrorCalculator) UpdateError(actual, ideal []float64) {
	for i := range ideal {
		delta := ideal[i] - actual[i]
		e.sum += delta * delta
	}
	e.count += len(ideal)
}

// Count returns the number of components accumulated since the last Clear.
func (e *ErrorCalculator) Count() int {
	return e.count
}

// Calculate returns the mean squared error.
// NOTE : without any update since the last Clear the result is NaN.
func (e *ErrorCalculator) Calculate() float64 {
	return e.sum / float64(e.count)
}
