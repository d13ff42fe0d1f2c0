package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	EntitiesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rental_entities_created_total",
			Help: "Total number of entities created by entity type",
		},
		[]string{"entity"},
	)
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rental_validation_failures_total",
			Help: "Total number of rejected entity mutations by entity type",
		},
		[]string{"entity"},
	)
	RequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rental_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func InitMetrics() {
	for _, c := range []prometheus.Collector{EntitiesCreated, ValidationFailures, RequestDuration} {
		if err := prometheus.Register(c); err != nil {
			log.Error().Err(err).Msg("Failed to register metric")
		}
	}
}
