package train

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/drakos74/free-rbf/internal/math"
	"github.com/drakos74/free-rbf/internal/storage"
	"github.com/google/uuid"
)

// Shape describes the dimensions of the trained network.
type Shape struct {
	Inputs     int `json:"inputs"`
	RBFs       int `json:"rbfs"`
	Outputs    int `json:"outputs"`
	Parameters int `json:"parameters"`
}

// Report summarises a training run.
// It holds no trained parameters.
type Report struct {
	ID         string     `json:"id"`
	Time       time.Time  `json:"time"`
	Config     Config     `json:"config"`
	Seed       uint64     `json:"seed"`
	Classes    []string   `json:"classes"`
	Shape      Shape      `json:"shape"`
	Result     Result     `json:"result"`
	Error      *float64   `json:"error,omitempty"`
	Trend      *float64   `json:"trend,omitempty"`
	Evaluation Evaluation `json:"evaluation"`
	Baseline   *float64   `json:"baseline,omitempty"`
}

// NewReport creates a new report for the given config.
func NewReport(cfg Config, seed uint64) Report {
	return Report{
		ID:     uuid.New().String(),
		Time:   time.Now(),
		Config: cfg,
		Seed:   seed,
	}
}

// WithResult adds the training result to the report.
func (r *Report) WithResult(result Result) *Report {
	r.Result = result
	if !gomath.IsInf(result.Error, 0) && !gomath.IsNaN(result.Error) {
		e := result.Error
		r.Error = &e
	}
	if trend, err := Trend(result.Improvements); err == nil {
		r.Trend = &trend
	}
	return r
}

// Key returns the storage key for the report.
func (r Report) Key() storage.Key {
	return storage.Key{
		Run:   r.ID,
		Set:   r.Config.Set,
		Label: "report",
	}
}

// Store stores the report.
func (r Report) Store(store storage.Persistence) error {
	if err := store.Store(r.Key(), r); err != nil {
		return fmt.Errorf("could not store report '%s': %w", r.ID, err)
	}
	return nil
}

// Trend is the slope of the error over the iterations in log-log space.
// Greedy random restarts typically show a slow power law decay.
func Trend(improvements []Improvement) (float64, error) {
	x := make([]float64, 0, len(improvements))
	y := make([]float64, 0, len(improvements))
	for _, imp := range improvements {
		if imp.Error <= 0 {
			continue
		}
		x = append(x, gomath.Log(float64(imp.Iteration)))
		y = append(y, gomath.Log(imp.Error))
	}
	c, err := math.Fit(x, y, 1)
	if err != nil {
		return 0, fmt.Errorf("could not fit trend: %w", err)
	}
	return c[1], nil
}
