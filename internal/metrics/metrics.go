package metrics

import (
	"sync"
)

// Observer is the process-wide metrics sink.
var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// Rows counts rows flowing out of a pipeline stage for the given table.
func (m *Metrics) Rows(table string, count int) {
	m.prometheus.Rows.WithLabelValues(table).Add(float64(count))
}

// Prediction counts one served prediction for the given mode and outcome.
func (m *Metrics) Prediction(mode string, outcome string) {
	m.prometheus.Predictions.WithLabelValues(mode, outcome).Inc()
}
