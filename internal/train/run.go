package train

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/drakos74/free-rbf/internal/dataset"
	"github.com/drakos74/free-rbf/internal/math/encoding"
	"github.com/drakos74/free-rbf/internal/math/ml"
	"github.com/drakos74/free-rbf/internal/math/rbf"
	"github.com/drakos74/free-rbf/internal/metrics"
	"github.com/drakos74/free-rbf/internal/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Run loads the data set, trains a network on it and evaluates the result.
// The report is stored if a store is given, the evaluation table is written to out if given.
func Run(ctx context.Context, cfg Config, data io.Reader, store storage.Persistence, m *metrics.Metrics, out io.Writer) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("invalid config: %w", err)
	}

	ds, err := dataset.Load(data)
	if err != nil {
		return Report{}, fmt.Errorf("could not load data set '%s': %w", cfg.Set, err)
	}
	for col := 0; col < cfg.Inputs; col++ {
		if err := ds.Normalize(col); err != nil {
			return Report{}, fmt.Errorf("could not normalize column %d: %w", col, err)
		}
	}
	classes, err := ds.EncodeEquilateral(cfg.Class)
	if err != nil {
		return Report{}, fmt.Errorf("could not encode classes: %w", err)
	}
	outputs := classes.Len() - 1
	records, err := ds.ExtractSupervised(0, cfg.Inputs, cfg.Class, outputs)
	if err != nil {
		return Report{}, fmt.Errorf("could not extract records: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	net := rbf.NewNetwork(cfg.Inputs, cfg.RBFs, outputs)
	scorer := ml.NewScorer(records)
	greedy := ml.NewGreedyRandom(net, scorer, rand.NewSource(seed))

	report := NewReport(cfg, seed)
	report.Classes = classes.Names()
	report.Shape = Shape{
		Inputs:     net.Inputs(),
		RBFs:       net.RBFs(),
		Outputs:    net.Outputs(),
		Parameters: net.Size(),
	}

	log.Info().
		Str("id", report.ID).
		Str("set", cfg.Set).
		Int("records", len(records)).
		Strs("classes", classes.Names()).
		Int("parameters", net.Size()).
		Uint64("seed", seed).
		Msg("start training")

	result, err := NewTrainer(cfg.Set, cfg.LogEvery, m).Iterate(ctx, greedy, cfg.Iterations, cfg.MinScore)
	report.WithResult(result)
	if err != nil {
		return report, fmt.Errorf("training stopped: %w", err)
	}

	eq, err := encoding.NewEquilateral(classes.Len())
	if err != nil {
		return report, fmt.Errorf("could not create decoder: %w", err)
	}
	report.Evaluation = Query(net, records, eq, classes)
	log.Info().
		Str("id", report.ID).
		Int("correct", report.Evaluation.Correct).
		Int("total", report.Evaluation.Total).
		Float64("accuracy", report.Evaluation.Accuracy).
		Float64("error", greedy.LastError()).
		Msg("final error")

	if out != nil {
		report.Evaluation.Render(out)
	}

	if cfg.Trees > 0 {
		accuracy, err := Baseline(records, eq, cfg.Trees)
		if err != nil {
			log.Warn().Err(err).Msg("could not compute baseline")
		} else {
			report.Baseline = &accuracy
		}
	}

	if cfg.Plot != "" {
		if err := Plot(fmt.Sprintf("%s [%s]", cfg.Set, report.ID), result.Improvements, cfg.Plot); err != nil {
			log.Warn().Err(err).Str("file", cfg.Plot).Msg("could not plot error")
		}
	}

	if store != nil {
		if err := report.Store(store); err != nil {
			return report, err
		}
		log.Info().Str("id", report.ID).Str("key", report.Key().Path()).Msg("stored report")
	}

	return report, nil
}
