package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(Observer.prometheus.Rows)
	prometheus.MustRegister(Observer.prometheus.Predictions)
}
