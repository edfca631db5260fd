package metrics

import (
	"fmt"
	"math"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	Accepted = "accepted"
	Rejected = "rejected"
)

// Observer is the process wide metrics collector.
var Observer = NewMetrics(prometheus.NewRegistry())

// Metrics records the progress of the training runs.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

// NewMetrics creates the collectors and registers them on the given registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry:   registry,
		prometheus: NewPrometheusMetrics(),
	}
	registry.MustRegister(m.prometheus.Iterations, m.prometheus.Error)
	return m
}

// Iteration counts an iteration for the given data set.
func (m *Metrics) Iteration(set string, accepted bool) {
	result := Rejected
	if accepted {
		result = Accepted
	}
	m.prometheus.Iterations.WithLabelValues(set, result).Inc()
}

// Error sets the current error for the given data set.
// The initial +Inf error is not exported.
func (m *Metrics) Error(set string, e float64) {
	if math.IsInf(e, 0) || math.IsNaN(e) {
		return
	}
	m.prometheus.Error.WithLabelValues(set).Set(e)
}

// Handler returns the http handler exposing the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes the metrics on the given port in the background.
func (m *Metrics) Serve(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
		if err != nil {
			log.Error().Err(err).Int("port", port).Msg("metrics server stopped")
		}
	}()
	log.Info().Int("port", port).Msg("serving metrics")
}
