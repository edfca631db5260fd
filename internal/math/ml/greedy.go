package ml

import (
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	// MinParam is the lower bound for the random parameters.
	MinParam = -10.0
	// MaxParam is the upper bound for the random parameters.
	MaxParam = 10.0
)

// GreedyRandom is a random restart search.
// Each iteration replaces the whole long term memory with random values
// and keeps them only if the score improves.
type GreedyRandom struct {
	net       Trainable
	scorer    *Scorer
	rnd       *rand.Rand
	snapshot  []float64
	lastError float64
	candidate float64
	accepted  int
	rejected  int
}

// NewGreedyRandom creates a new greedy random search for the given network.
// The random source is owned by the search and must not be shared.
func NewGreedyRandom(net Trainable, scorer *Scorer, src rand.Source) *GreedyRandom {
	return &GreedyRandom{
		net:       net,
		scorer:    scorer,
		rnd:       rand.New(src),
		snapshot:  make([]float64, len(net.LongTermMemory())),
		lastError: math.Inf(1),
		candidate: math.NaN(),
	}
}

// LastError returns the best score so far, +Inf before the first accepted iteration.
func (g *GreedyRandom) LastError() float64 {
	return g.lastError
}

// Candidate returns the score of the parameters evaluated in the last iteration.
func (g *GreedyRandom) Candidate() float64 {
	return g.candidate
}

// Accepted returns the number of accepted iterations.
func (g *GreedyRandom) Accepted() int {
	return g.accepted
}

// Rejected returns the number of rejected iterations.
func (g *GreedyRandom) Rejected() int {
	return g.rejected
}

// Iteration randomizes the long term memory, scores it
// and reverts to the previous state if the score did not improve.
func (g *GreedyRandom) Iteration() {
	memory := g.net.LongTermMemory()
	copy(g.snapshot, memory)

	g.randomize(memory)

	score := g.scorer.Score(g.net)
	g.candidate = score

	// NOTE : NaN scores are never less, so they are always rejected
	if score < g.lastError {
		log.Debug().
			Float64("score", score).
			Float64("previous", g.lastError).
			Int("accepted", g.accepted).
			Msg("accepted new parameters")
		g.lastError = score
		g.accepted++
		return
	}
	copy(memory, g.snapshot)
	g.rejected++
}

func (g *GreedyRandom) randomize(memory []float64) {
	for i := range memory {
		memory[i] = MinParam + (MaxParam-MinParam)*g.rnd.Float64()
	}
}
