package client

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

type metrics struct {
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// newMetrics registers the client counters with reg. Clients sharing a
// registerer share the same counters.
func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		requests: registerCounterVec(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lightcal_client",
				Name:      "requests_total",
				Help:      "Requests issued, one per client call.",
			},
			[]string{"api", "endpoint"},
		)),
		failures: registerCounterVec(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "lightcal_client",
				Name:      "request_failures_total",
				Help:      "Calls that ended with a transport error.",
			},
			[]string{"api", "endpoint"},
		)),
	}
}

func registerCounterVec(reg prometheus.Registerer, cv *prometheus.CounterVec) *prometheus.CounterVec {
	err := reg.Register(cv)
	if err == nil {
		return cv
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing
		}
	}
	// Counting still works on an unregistered collector; it just isn't exported.
	log.Warn().Err(err).Msg("client metrics not registered")
	return cv
}
