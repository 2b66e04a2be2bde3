package http

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wellfin/wellfin/finance"
)

func init() {
	prometheus.MustRegister(promResponseDurationMilliseconds)
	prometheus.MustRegister(promMockCacheLookups)
}

var promResponseDurationMilliseconds = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "wellfin_http_response_duration_milliseconds",
		Help:    "The duration of time it takes to receive and write a response to an API request",
		Buckets: prometheus.ExponentialBuckets(9.375, 2, 10),
	},
	[]string{"action", "error"},
)

var promMockCacheLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "wellfin_mock_cache_lookups_total",
		Help: "The number of generated-record cache lookups, by result",
	},
	[]string{"result"},
)

// recordResponseDuration records the duration of time to respond to a
// request in milliseconds.
func recordResponseDuration(action string, err error, duration time.Duration) {
	var errString string
	if err != nil {
		switch errors.Cause(err).(type) {
		case finance.ClientError, finance.NotFoundError:
			errString = err.Error()
		default:
			errString = "internal error"
		}
	}

	promResponseDurationMilliseconds.
		WithLabelValues(action, errString).
		Observe(float64(duration.Nanoseconds()) / float64(time.Millisecond))
}

func recordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	promMockCacheLookups.WithLabelValues(result).Inc()
}
