package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/drakos74/free-rbf/infra/config"
	"github.com/drakos74/free-rbf/internal/metrics"
	"github.com/drakos74/free-rbf/internal/storage"
	"github.com/drakos74/free-rbf/internal/storage/file/json"
	"github.com/drakos74/free-rbf/internal/train"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	cfgFile := flag.String("config", "", "json config of the training run, defaults to infra/config/train.json")
	file := flag.String("file", "", "csv data set, defaults to the bundled iris set")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	iterations := flag.Int("iterations", 0, "maximum number of iterations")
	rbfs := flag.Int("rbfs", 0, "number of radial basis functions")
	plotFile := flag.String("plot", "", "file to plot the error curve into")
	reportDir := flag.String("report", "", "directory to store the report into")
	port := flag.Int("metrics", 0, "port to expose the metrics on")
	level := flag.String("level", "", "log level")
	flag.Parse()

	cfg := train.DefaultConfig()
	if *cfgFile == "" {
		config.MustLoad("train", &cfg)
	} else if _, err := config.Load(*cfgFile, &cfg); err != nil {
		log.Fatal().Err(err).Str("config", *cfgFile).Msg("could not load config")
	}

	// explicit flags override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.File = *file
		case "seed":
			cfg.Seed = *seed
		case "iterations":
			cfg.Iterations = *iterations
		case "rbfs":
			cfg.RBFs = *rbfs
		case "plot":
			cfg.Plot = *plotFile
		case "report":
			cfg.ReportDir = *reportDir
		case "metrics":
			cfg.MetricsPort = *port
		case "level":
			cfg.LogLevel = *level
		}
	})

	if cfg.LogLevel != "" {
		l, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("invalid log level")
		}
		zerolog.SetGlobalLevel(l)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	report, err := run(ctx, cfg, os.Stdout)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("id", report.ID).Msg("training failed")
	}
	log.Info().
		Str("id", report.ID).
		Int("iterations", report.Result.Iterations).
		Float64("accuracy", report.Evaluation.Accuracy).
		Msg("done")
}

// run trains on the configured data set and stores the report if a report dir is given.
func run(ctx context.Context, cfg train.Config, out io.Writer) (train.Report, error) {
	data, err := cfg.Open()
	if err != nil {
		return train.Report{}, err
	}
	defer data.Close()

	shard := storage.VoidShard(storage.ReportDir)
	if cfg.ReportDir != "" {
		storage.DefaultDir = cfg.ReportDir
		shard = json.BlobShard(storage.ReportDir)
	}
	store, err := shard(cfg.Set)
	if err != nil {
		return train.Report{}, fmt.Errorf("could not create report storage: %w", err)
	}

	if cfg.MetricsPort > 0 {
		metrics.Observer.Serve(cfg.MetricsPort)
	}

	return train.Run(ctx, cfg, data, store, metrics.Observer, out)
}
