package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Rows        *prometheus.CounterVec
	Predictions *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "reorder",
				Name:      "rows",
			}, []string{"table"}),
		Predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "reorder",
				Name:      "predictions",
			}, []string{"mode", "outcome"}),
	}
}
