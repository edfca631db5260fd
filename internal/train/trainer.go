package train

import (
	"context"
	"math"
	"time"

	"github.com/drakos74/free-rbf/internal/buffer"
	"github.com/drakos74/free-rbf/internal/math/ml"
	"github.com/drakos74/free-rbf/internal/metrics"
	"github.com/rs/zerolog/log"
)

// acceptanceWindow is the number of recent iterations the acceptance rate is computed on.
const acceptanceWindow = 1000

// Improvement is an accepted step of the search.
type Improvement struct {
	Iteration int     `json:"iteration"`
	Error     float64 `json:"error"`
}

// Result is the outcome of a training loop.
type Result struct {
	Iterations   int            `json:"iterations"`
	Error        float64        `json:"-"`
	Converged    bool           `json:"converged"`
	Improvements []Improvement  `json:"improvements"`
	Candidates   buffer.Summary `json:"candidates"`
	Duration     time.Duration  `json:"duration"`
}

// candidate is implemented by strategies exposing the score of the last evaluated parameters.
type candidate interface {
	Candidate() float64
}

// Trainer drives a search strategy until the budget is spent or the error is low enough.
type Trainer struct {
	set      string
	logEvery int
	metrics  *metrics.Metrics
}

// NewTrainer creates a new trainer for the given data set name.
// logEvery defines how often the progress is logged, 0 disables it.
func NewTrainer(set string, logEvery int, m *metrics.Metrics) *Trainer {
	return &Trainer{
		set:      set,
		logEvery: logEvery,
		metrics:  m,
	}
}

// Iterate runs the strategy for at most the given iterations,
// or until its error drops below minScore.
// At least one iteration is always run. The context is checked between iterations.
func (t *Trainer) Iterate(ctx context.Context, strategy ml.Strategy, iterations int, minScore float64) (Result, error) {
	start := time.Now()
	result := Result{
		Error:        strategy.LastError(),
		Improvements: make([]Improvement, 0),
	}
	candidates := buffer.NewStats()
	acceptance := buffer.NewRing(acceptanceWindow)

	for {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Int("iteration", result.Iterations).Msg("training interrupted")
			result.Error = strategy.LastError()
			result.Candidates = candidates.Summary()
			result.Duration = time.Since(start)
			return result, err
		}

		previous := strategy.LastError()
		strategy.Iteration()
		result.Iterations++
		current := strategy.LastError()

		accepted := current < previous
		if accepted {
			result.Improvements = append(result.Improvements, Improvement{
				Iteration: result.Iterations,
				Error:     current,
			})
			acceptance.Push(1)
		} else {
			acceptance.Push(0)
		}
		if c, ok := strategy.(candidate); ok {
			if score := c.Candidate(); !math.IsNaN(score) && !math.IsInf(score, 0) {
				candidates.Push(score)
			}
		}
		if t.metrics != nil {
			t.metrics.Iteration(t.set, accepted)
			t.metrics.Error(t.set, current)
		}

		log.Debug().
			Int("iteration", result.Iterations).
			Float64("score", current).
			Bool("accepted", accepted).
			Msg("iteration (minimize)")

		if t.logEvery > 0 && result.Iterations%t.logEvery == 0 {
			log.Info().
				Str("set", t.set).
				Int("iteration", result.Iterations).
				Float64("score", current).
				Float64("acceptance", rate(acceptance.Get())).
				Msg("training progress")
		}

		if result.Iterations >= iterations || current < minScore {
			result.Error = current
			result.Converged = current < minScore
			break
		}
	}

	result.Candidates = candidates.Summary()
	result.Duration = time.Since(start)

	log.Info().
		Str("set", t.set).
		Int("iterations", result.Iterations).
		Int("improvements", len(result.Improvements)).
		Float64("error", result.Error).
		Bool("converged", result.Converged).
		Dur("duration", result.Duration).
		Msg("training finished")

	return result, nil
}

func rate(flags []float64) float64 {
	if len(flags) == 0 {
		return 0
	}
	sum := 0.0
	for _, f := range flags {
		sum += f
	}
	return sum / float64(len(flags))
}
