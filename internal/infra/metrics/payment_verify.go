package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		PaymentVerifyRequests,
		PaymentVerifyDuration,
	)
}

var (
	// Count of verify calls grouped by result and bounded reason.
	// result: ok|fail
	// reason: match|mismatch|missing_field|not_configured|bad_json|error
	PaymentVerifyRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_verify_requests_total",
			Help: "Count of /verify-payment calls by result and reason.",
		},
		[]string{"result", "reason"},
	)

	PaymentVerifyDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_verify_duration_seconds",
			Help:    "Duration of /verify-payment handler in seconds.",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"result"},
	)
)

// ObserveVerify records one verification outcome.
func ObserveVerify(ok bool, reason string, d time.Duration) {
	result := "fail"
	if ok {
		result = "ok"
	}
	PaymentVerifyRequests.WithLabelValues(result, norm(reason)).Inc()
	PaymentVerifyDuration.WithLabelValues(result).Observe(d.Seconds())
}
