package train

import (
	"bytes"
	"testing"

	"github.com/drakos74/free-rbf/internal/dataset"
	"github.com/drakos74/free-rbf/internal/math/encoding"
	"github.com/drakos74/free-rbf/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lookup returns a fixed output per input value.
type lookup map[float64][]float64

func (l lookup) ComputeRegression(input []float64) []float64 {
	return l[input[0]]
}

func classes(names ...string) *dataset.Classes {
	c := dataset.NewClasses()
	for _, n := range names {
		c.Add(n)
	}
	return c
}

func TestQuery(t *testing.T) {
	eq, err := encoding.NewEquilateral(3)
	require.NoError(t, err)
	c := classes("a", "b", "c")

	records := []model.Record{
		model.NewRecord([]float64{0}, eq.Encode(0)),
		model.NewRecord([]float64{1}, eq.Encode(1)),
		model.NewRecord([]float64{2}, eq.Encode(2)),
		model.NewRecord([]float64{3}, eq.Encode(2)),
	}
	net := lookup{
		0: eq.Encode(0),
		1: eq.Encode(2),
		2: {0.5, 0.9},
		3: {0.1, 0.2},
	}

	eval := Query(net, records, eq, c)
	assert.Equal(t, 4, eval.Total)
	assert.Equal(t, 2, eval.Correct)
	assert.Equal(t, 0.5, eval.Accuracy)

	assert.Equal(t, Guess{Actual: "a", Ideal: "a", Output: eq.Encode(0)}, eval.Guesses[0])
	assert.Equal(t, "c", eval.Guesses[1].Actual)
	assert.Equal(t, "b", eval.Guesses[1].Ideal)
	assert.True(t, eval.Guesses[2].Correct())
	assert.False(t, eval.Guesses[3].Correct())

	var out bytes.Buffer
	eval.Render(&out)
	assert.Contains(t, out.String(), "guess")
	assert.Contains(t, out.String(), "50.00%")
}

func TestQuery_Empty(t *testing.T) {
	eq, err := encoding.NewEquilateral(2)
	require.NoError(t, err)
	eval := Query(lookup{}, nil, eq, classes("a", "b"))
	assert.Equal(t, 0, eval.Total)
	assert.Equal(t, 0.0, eval.Accuracy)
}

func TestBaseline(t *testing.T) {
	eq, err := encoding.NewEquilateral(2)
	require.NoError(t, err)

	records := make([]model.Record, 0)
	for i := 0; i < 40; i++ {
		f := float64(i) / 100
		records = append(records, model.NewRecord([]float64{f, f}, eq.Encode(0)))
		records = append(records, model.NewRecord([]float64{1 - f, 1 - f}, eq.Encode(1)))
	}

	accuracy, err := Baseline(records, eq, 20)
	require.NoError(t, err)
	assert.True(t, accuracy > 0.9, "accuracy too low %v", accuracy)

	_, err = Baseline(nil, eq, 20)
	assert.Error(t, err)
}
