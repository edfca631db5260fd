package train

import (
	"fmt"
	"io"
	"os"

	"github.com/drakos74/free-rbf/internal/dataset"
)

// Config defines a training run.
// Inputs are the first columns of the data set, Class is the column with the class names.
// Seed 0 picks a seed from the clock, the picked seed is reported.
// An empty File trains on the bundled iris data set.
type Config struct {
	Set         string  `json:"set"`
	File        string  `json:"file"`
	Inputs      int     `json:"inputs"`
	Class       int     `json:"class"`
	RBFs        int     `json:"rbfs"`
	Iterations  int     `json:"iterations"`
	MinScore    float64 `json:"min_score"`
	Seed        uint64  `json:"seed"`
	Trees       int     `json:"trees"`
	LogEvery    int     `json:"log_every"`
	LogLevel    string  `json:"log_level"`
	ReportDir   string  `json:"report_dir"`
	Plot        string  `json:"plot"`
	MetricsPort int     `json:"metrics_port"`
}

// DefaultConfig returns the config for the iris data set.
func DefaultConfig() Config {
	return Config{
		Set:        dataset.IrisSet,
		Inputs:     dataset.IrisInputs,
		Class:      dataset.IrisClass,
		RBFs:       4,
		Iterations: 100000,
		MinScore:   0.01,
		Trees:      100,
		LogEvery:   1000,
		LogLevel:   "info",
	}
}

// Validate checks the config for inconsistencies.
func (c Config) Validate() error {
	if c.Inputs < 1 {
		return fmt.Errorf("at least one input is needed: %d", c.Inputs)
	}
	if c.Class < c.Inputs {
		return fmt.Errorf("class column %d overlaps with the inputs [0,%d)", c.Class, c.Inputs)
	}
	if c.RBFs < 1 {
		return fmt.Errorf("at least one rbf is needed: %d", c.RBFs)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("at least one iteration is needed: %d", c.Iterations)
	}
	if c.Trees < 0 || c.LogEvery < 0 || c.MetricsPort < 0 {
		return fmt.Errorf("negative values in config: %+v", c)
	}
	return nil
}

// Open opens the data set of the config.
func (c Config) Open() (io.ReadCloser, error) {
	if c.File == "" {
		return io.NopCloser(dataset.Iris()), nil
	}
	f, err := os.Open(c.File)
	if err != nil {
		return nil, fmt.Errorf("could not open data set '%s': %w", c.File, err)
	}
	return f, nil
}
