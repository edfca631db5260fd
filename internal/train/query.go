package train

import (
	"fmt"
	"io"

	"github.com/drakos74/free-rbf/internal/math"
	"github.com/drakos74/free-rbf/internal/math/ml"
	"github.com/drakos74/free-rbf/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
)

// Decoder maps an encoded vector back to its class index.
type Decoder interface {
	Decode(v []float64) int
}

// Namer maps a class index to its name.
type Namer interface {
	Name(i int) string
}

// Guess is the classification of one record.
type Guess struct {
	Actual string    `json:"actual"`
	Ideal  string    `json:"ideal"`
	Output []float64 `json:"output"`
}

// Correct returns true if the guess matches the ideal class.
func (g Guess) Correct() bool {
	return g.Actual == g.Ideal
}

// Evaluation is the classification outcome over a set of records.
type Evaluation struct {
	Guesses  []Guess `json:"-"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

// Query classifies every record with the network and compares it to the ideal class.
func Query(net ml.Regression, records []model.Record, decoder Decoder, classes Namer) Evaluation {
	eval := Evaluation{
		Guesses: make([]Guess, len(records)),
		Total:   len(records),
	}
	for i, r := range records {
		output := net.ComputeRegression(r.Input())
		g := Guess{
			Actual: classes.Name(decoder.Decode(output)),
			Ideal:  classes.Name(decoder.Decode(r.Ideal())),
			Output: output,
		}
		if g.Correct() {
			eval.Correct++
		}
		eval.Guesses[i] = g
	}
	if eval.Total > 0 {
		eval.Accuracy = float64(eval.Correct) / float64(eval.Total)
	}
	return eval
}

// Baseline trains a random forest on the same records and returns its accuracy on them.
func Baseline(records []model.Record, decoder Decoder, trees int) (float64, error) {
	x, y := model.Split(records)
	classes := make([]int, len(y))
	for i, ideal := range y {
		classes[i] = decoder.Decode(ideal)
	}
	forest := ml.NewForest(trees)
	if _, err := forest.Train(x, classes); err != nil {
		return 0, fmt.Errorf("could not train baseline: %w", err)
	}
	correct := 0
	for i, input := range x {
		c, err := forest.Predict(input)
		if err != nil {
			return 0, fmt.Errorf("could not predict baseline: %w", err)
		}
		if c == classes[i] {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(x))
	log.Info().Int("trees", trees).Float64("accuracy", accuracy).Msg("baseline forest")
	return accuracy, nil
}

// Render writes the guesses as a table.
func (e Evaluation) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"#", "guess", "ideal", "output", ""})
	for i, g := range e.Guesses {
		mark := ""
		if !g.Correct() {
			mark = "x"
		}
		table.Append([]string{
			fmt.Sprintf("%d", i),
			g.Actual,
			g.Ideal,
			format(g.Output),
			mark,
		})
	}
	table.SetFooter([]string{"", "", "", "accuracy", math.Format(100*e.Accuracy) + "%"})
	table.Render()
}

func format(v []float64) string {
	s := "["
	for i, f := range v {
		if i > 0 {
			s += " "
		}
		s += math.Format(f)
	}
	return s + "]"
}
