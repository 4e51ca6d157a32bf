// ABOUTME: Prometheus instrumentation for the service facade.
// ABOUTME: Counts operation outcomes by error kind and times each operation.
package observability

import (
	"time"

	"github.com/harperreed/arista/internal/apperr"
	"github.com/prometheus/client_golang/prometheus"
)

// OutcomeOK labels operations that returned no error.
const OutcomeOK = "ok"

// Metrics holds the facade collectors. A nil *Metrics records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arista",
			Subsystem: "service",
			Name:      "operations_total",
			Help:      "Number of facade operations by outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "arista",
			Subsystem: "service",
			Name:      "operation_duration_seconds",
			Help:      "Time spent in facade operations including storage.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{m.operations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records one finished operation.
func (m *Metrics) Observe(op string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op, Outcome(err)).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// Outcome maps err to its metric label.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	return string(apperr.KindOf(err))
}
