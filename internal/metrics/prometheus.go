package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus holds the training collectors.
type Prometheus struct {
	Iterations *prometheus.CounterVec
	Error      *prometheus.GaugeVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Iterations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rbf",
				Name:      "iterations",
				Help:      "search iterations by outcome",
			}, []string{"set", "result"}),
		Error: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "rbf",
				Name:      "error",
				Help:      "best mean squared error so far",
			}, []string{"set"}),
	}
}
