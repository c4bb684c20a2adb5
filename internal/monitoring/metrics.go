package monitoring

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	Evaluations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "simulation_evaluations_total",
			Help: "Total simulation evaluations",
		},
	)

	Exports = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "submission_exports_total",
			Help: "Total submission workbook exports",
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HttpRequests)
		prometheus.MustRegister(Evaluations)
		prometheus.MustRegister(Exports)
	})
}
