package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PayPalRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "checkout",
			Subsystem: "paypal",
			Name:      "request_duration_seconds",
			Help:      "PayPal API call latency in seconds",
			Buckets:   []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"operation", "status_code"},
	)

	PayPalRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "paypal",
			Name:      "requests_total",
			Help:      "Total number of PayPal API calls",
		},
		[]string{"operation", "status_code"},
	)
)

func init() {
	Registry.MustRegister(PayPalRequestDuration, PayPalRequestsTotal)
}

// ObservePayPalCall records one outbound call. statusCode is "error" when no
// response was received.
func ObservePayPalCall(operation, statusCode string, elapsed time.Duration) {
	PayPalRequestDuration.WithLabelValues(operation, statusCode).Observe(elapsed.Seconds())
	PayPalRequestsTotal.WithLabelValues(operation, statusCode).Inc()
}
