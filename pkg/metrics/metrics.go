package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vippsno/vipps-sdk-go/pkg/checkout"
	"github.com/vippsno/vipps-sdk-go/pkg/epayment"
)

// Collector records request, retry and token refresh metrics. It is safe
// for concurrent use; a nil *Collector records nothing.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	retriesTotal    *prometheus.CounterVec
	tokenRefreshes  *prometheus.CounterVec
}

// NewCollector creates a Collector on the default registerer.
func NewCollector() *Collector {
	return NewCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewCollectorWithRegistry creates a Collector registering its metrics on reg.
func NewCollectorWithRegistry(reg prometheus.Registerer) *Collector {
	return &Collector{
		requestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "vipps_requests_total",
				Help: "Total number of Vipps API round trips",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vipps_request_duration_seconds",
				Help:    "Duration of Vipps API round trips in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		retriesTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "vipps_retries_total",
				Help: "Total number of retried Vipps API calls",
			},
			[]string{"method", "path"},
		),
		tokenRefreshes: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "vipps_token_refreshes_total",
				Help: "Total number of access token refreshes by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveRequest records one round trip. A zero status means no response
// was received and is reported as "error".
func (c *Collector) ObserveRequest(method, path string, status int, elapsed time.Duration, _ error) {
	if c == nil {
		return
	}

	p := NormalizePath(path)
	c.requestsTotal.WithLabelValues(method, p, statusLabel(status)).Inc()
	c.requestDuration.WithLabelValues(method, p).Observe(elapsed.Seconds())
}

// ObserveRetry records a re-attempt.
func (c *Collector) ObserveRetry(method, path string, _ int, _ error) {
	if c == nil {
		return
	}

	c.retriesTotal.WithLabelValues(method, NormalizePath(path)).Inc()
}

// ObserveTokenRefresh records the outcome of a token refresh.
func (c *Collector) ObserveTokenRefresh(err error) {
	if c == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "failure"
	}
	c.tokenRefreshes.WithLabelValues(result).Inc()
}

var referenceRoots = []string{
	epayment.PaymentsPath,
	epayment.TestPaymentsPath,
	checkout.SessionPath,
}

// NormalizePath replaces the payment or session reference in path with
// "{reference}" so label cardinality stays bounded.
func NormalizePath(path string) string {
	for _, root := range referenceRoots {
		rest, ok := strings.CutPrefix(path, root+"/")
		if !ok || rest == "" {
			continue
		}
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			return root + "/{reference}" + rest[i:]
		}
		return root + "/{reference}"
	}
	return path
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}
