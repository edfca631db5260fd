package ml

import (
	"fmt"

	randomforest "github.com/malaschitz/randomForest"
	"github.com/rs/zerolog/log"
)

// Forest is a random forest classifier,
// used as a reference for the accuracy of the trained networks.
type Forest struct {
	trees  int
	forest *randomforest.Forest
}

// NewForest creates a new random forest with the given number of trees.
func NewForest(trees int) *Forest {
	return &Forest{
		trees: trees,
	}
}

// Train trains the forest on the given inputs and class indices.
// It returns the feature importance.
func (f *Forest) Train(x [][]float64, y []int) ([]float64, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, fmt.Errorf("could not align inputs with classes [ %d | %d ]", len(x), len(y))
	}
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: x, Class: y}
	forest.Train(f.trees)
	f.forest = forest
	log.Debug().
		Int("trees", f.trees).
		Int("samples", len(x)).
		Str("features", fmt.Sprintf("%+v", forest.FeatureImportance)).
		Msg("trained forest")
	return forest.FeatureImportance, nil
}

// Predict returns the class with the most votes for the given input.
func (f *Forest) Predict(x []float64) (int, error) {
	if f.forest == nil {
		return 0, fmt.Errorf("no model present")
	}
	votes := f.forest.Vote(x)
	class := 0
	for i, v := range votes {
		if v > votes[class] {
			class = i
		}
	}
	return class, nil
}
