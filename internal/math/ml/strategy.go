package ml

// Strategy is a search strategy over the parameters of a model.
type Strategy interface {
	// Iteration runs one step of the search.
	Iteration()
	// LastError returns the best score found so far.
	LastError() float64
}

// Trainable is a model with a flat parameter vector that can be replaced in place.
type Trainable interface {
	Regression
	LongTermMemory() []float64
}
