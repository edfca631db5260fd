package ml

import (
	"github.com/drakos74/free-rbf/internal/model"
)

// Regression is a model mapping an input vector to an output vector.
type Regression interface {
	ComputeRegression(input []float64) []float64
}

// Scorer scores a model against a training set.
type Scorer struct {
	records []model.Record
	calc    ErrorCalculator
}

// NewScorer creates a new scorer for the given training set.
func NewScorer(records []model.Record) *Scorer {
	return &Scorer{
		records: records,
	}
}

// Size returns the number of records in the training set.
func (s *Scorer) Size() int {
	return len(s.records)
}

// Score returns the mean squared error of the model over the whole training set.
// The training set must not be empty.
func (s *Scorer) Score(net Regression) float64 {
	s.calc.Clear()
	for _, r := range s.records {
		output := net.ComputeRegression(r.Input())
		s.calc.UpdateError(output, r.Ideal())
	}
	return s.calc.Calculate()
}
