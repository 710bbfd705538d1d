package gateway

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/primetrade/product-dashboard/internal/core/domain"
)

const namespace = "dashboard"

// CallsTotal counts backend calls by operation and outcome.
// Labels:
//   - operation: gateway method name (e.g. "list_products")
//   - outcome: "ok", "transport", "unauthenticated", "rejected", "malformed"
var CallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_calls_total",
		Help:      "Total number of backend calls issued by the gateway.",
	},
	[]string{"operation", "outcome"},
)

// CallDuration measures end-to-end call latency per operation.
var CallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_call_duration_seconds",
		Help:      "Duration of backend calls from issue to classification.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// observe records one finished call. err is the classified result handed to
// the caller.
func observe(operation string, start time.Time, err error) {
	CallDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	CallsTotal.WithLabelValues(operation, outcomeLabel(err)).Inc()
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	case domain.AsRemote(err) != nil:
		return "rejected"
	default:
		return "transport"
	}
}
