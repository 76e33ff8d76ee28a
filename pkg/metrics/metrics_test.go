package metrics

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsno/vipps-sdk-go/pkg/transport"
)

var _ transport.Observer = (*Collector)(nil)

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/epayment/v1/payments":                      "/epayment/v1/payments",
		"/epayment/v1/payments/order-1":              "/epayment/v1/payments/{reference}",
		"/epayment/v1/payments/order-1/capture":      "/epayment/v1/payments/{reference}/capture",
		"/epayment/v1/payments/a%2Fb/events":         "/epayment/v1/payments/{reference}/events",
		"/epayment/v1/test/payments/order-1/approve": "/epayment/v1/test/payments/{reference}/approve",
		"/checkout/v3/session":                       "/checkout/v3/session",
		"/checkout/v3/session/order-1":               "/checkout/v3/session/{reference}",
		"/accesstoken/get":                           "/accesstoken/get",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePath(in), in)
	}
}

func TestCollectorRecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollectorWithRegistry(reg)

	c.ObserveRequest(http.MethodPost, "/epayment/v1/payments/a/capture", 503, 10*time.Millisecond, errors.New("unavailable"))
	c.ObserveRequest(http.MethodPost, "/epayment/v1/payments/b/capture", 200, 20*time.Millisecond, nil)
	c.ObserveRequest(http.MethodGet, "/checkout/v3/session/a", 0, time.Millisecond, errors.New("dial"))
	c.ObserveRetry(http.MethodPost, "/epayment/v1/payments/a/capture", 2, errors.New("unavailable"))

	capture := "/epayment/v1/payments/{reference}/capture"
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues(http.MethodPost, capture, "503")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues(http.MethodPost, capture, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues(http.MethodGet, "/checkout/v3/session/{reference}", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.retriesTotal.WithLabelValues(http.MethodPost, capture)))
	assert.Equal(t, 2, testutil.CollectAndCount(c.requestDuration))
}

func TestCollectorRecordsTokenRefreshes(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollectorWithRegistry(reg)

	c.ObserveTokenRefresh(nil)
	c.ObserveTokenRefresh(nil)
	c.ObserveTokenRefresh(errors.New("denied"))

	expected := `
# HELP vipps_token_refreshes_total Total number of access token refreshes by result
# TYPE vipps_token_refreshes_total counter
vipps_token_refreshes_total{result="failure"} 1
vipps_token_refreshes_total{result="success"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "vipps_token_refreshes_total"))
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.ObserveRequest(http.MethodGet, "/x", 200, time.Second, nil)
	c.ObserveRetry(http.MethodGet, "/x", 2, nil)
	c.ObserveTokenRefresh(nil)
}
