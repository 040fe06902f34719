package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PolygonsGenerated prometheus.Counter
	SamplesDrawn      prometheus.Counter
	RefinementRounds  prometheus.Counter
	MethodSeconds     *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		PolygonsGenerated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "planimeter_polygons_generated_total",
			Help: "Total number of random polygons generated.",
		}),
		SamplesDrawn: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "planimeter_monte_carlo_samples_total",
			Help: "Total number of Monte Carlo sample points drawn during refinement.",
		}),
		RefinementRounds: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "planimeter_refinement_rounds_total",
			Help: "Total number of Monte Carlo refinement rounds executed.",
		}),
		MethodSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "planimeter_method_duration_seconds",
			Help:    "Duration of area computations by method.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 8),
		}, []string{"method"}),
	}
}
