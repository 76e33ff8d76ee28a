package sdk

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vippsno/vipps-sdk-go/internal/testutil/stubserver"
	"github.com/vippsno/vipps-sdk-go/pkg/checkout"
	"github.com/vippsno/vipps-sdk-go/pkg/config"
	"github.com/vippsno/vipps-sdk-go/pkg/epayment"
	"github.com/vippsno/vipps-sdk-go/pkg/metrics"
	"github.com/vippsno/vipps-sdk-go/pkg/model"
	"github.com/vippsno/vipps-sdk-go/pkg/token"
	"github.com/vippsno/vipps-sdk-go/pkg/transport"
)

func testConfig(hostname string) *config.Config {
	return &config.Config{
		ClientID:             "cid",
		ClientSecret:         "csecret",
		SubscriptionKey:      "sub-key",
		MerchantSerialNumber: "123456",
		PluginName:           "acme-plugin",
		PluginVersion:        "4.5.6",
		UseTestMode:          true,
		Hostname:             hostname,
	}
}

func noWait() Option {
	return WithRetryOptions(transport.WithBackOff(func() backoff.BackOff {
		return &backoff.ZeroBackOff{}
	}))
}

func scriptToken(srv *stubserver.Server) {
	srv.Script(http.MethodPost, token.Path, stubserver.JSON(http.StatusOK, map[string]string{
		"token_type":   "Bearer",
		"expires_in":   "3600",
		"expires_on":   strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10),
		"access_token": "sdk-token",
	}))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)

	_, err = New(&config.Config{})
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewResolvesBaseURL(t *testing.T) {
	v, err := New(testConfig(""))
	require.NoError(t, err)
	assert.Equal(t, config.TestHost, v.BaseURL())

	cfg := testConfig("")
	cfg.UseTestMode = false
	v, err = New(cfg)
	require.NoError(t, err)
	assert.Equal(t, config.ProductionHost, v.BaseURL())
}

func TestCreatePaymentThroughSDK(t *testing.T) {
	srv := stubserver.New(t)
	scriptToken(srv)
	srv.Script(http.MethodPost, epayment.PaymentsPath, stubserver.JSON(http.StatusCreated, map[string]string{
		"redirectUrl": "https://landing.example",
		"reference":   "order-1",
	}))

	v, err := New(testConfig(srv.URL), WithHTTPClient(srv.Client()), noWait())
	require.NoError(t, err)

	got, err := v.EPayment.CreatePayment(context.Background(), &model.CreatePaymentRequest{
		Amount:        model.Amount{Currency: model.CurrencyNOK, Value: 1000},
		PaymentMethod: model.PaymentMethod{Type: model.PaymentMethodWallet},
		Reference:     "order-1",
		UserFlow:      model.UserFlowWebRedirect,
	})
	require.NoError(t, err)
	assert.Equal(t, &model.CreatePaymentResponse{RedirectURL: "https://landing.example", Reference: "order-1"}, got)
	assert.True(t, v.Tokens.Valid())

	tokenReqs := srv.RequestsTo(http.MethodPost, token.Path)
	require.Len(t, tokenReqs, 1)
	assert.Equal(t, "cid", tokenReqs[0].Header.Get(transport.ClientIDHeader))
	assert.Equal(t, "csecret", tokenReqs[0].Header.Get(transport.ClientSecretHeader))
	assert.Equal(t, "sub-key", tokenReqs[0].Header.Get(transport.SubscriptionKeyHeader))

	reqs := srv.RequestsTo(http.MethodPost, epayment.PaymentsPath)
	require.Len(t, reqs, 1)
	h := reqs[0].Header
	assert.Equal(t, SystemName, h.Get(transport.SystemNameHeader))
	assert.Equal(t, Version, h.Get(transport.SystemVersionHeader))
	assert.Equal(t, "acme-plugin", h.Get(transport.SystemPluginNameHeader))
	assert.Equal(t, "Bearer sdk-token", h.Get(transport.AuthorizationHeader))
}

func TestCheckoutThroughSDK(t *testing.T) {
	srv := stubserver.New(t)
	srv.Script(http.MethodGet, checkout.SessionPath+"/order-1", stubserver.JSON(http.StatusOK, map[string]string{
		"sessionId":    "sid",
		"reference":    "order-1",
		"sessionState": "PaymentSuccessful",
	}))

	v, err := New(testConfig(srv.URL), WithHTTPClient(srv.Client()), noWait())
	require.NoError(t, err)

	got, err := v.Checkout.GetSessionDetails(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, model.CheckoutSessionPaymentSuccessful, got.SessionState)
	assert.Zero(t, srv.Hits(http.MethodPost, token.Path))
}

func TestAlwaysFailingCallMakesFiveAttempts(t *testing.T) {
	srv := stubserver.New(t)
	scriptToken(srv)
	srv.Script(http.MethodGet, epayment.PaymentsPath+"/order-1", stubserver.Status(http.StatusInternalServerError))

	v, err := New(testConfig(srv.URL), WithHTTPClient(srv.Client()), noWait())
	require.NoError(t, err)

	_, err = v.EPayment.GetPayment(context.Background(), "order-1")
	require.Error(t, err)
	assert.True(t, transport.IsStatus(err, http.StatusInternalServerError))
	assert.Equal(t, 5, srv.Hits(http.MethodGet, epayment.PaymentsPath+"/order-1"))
}

func TestTokenFailureWrapsErrRefresh(t *testing.T) {
	srv := stubserver.New(t)
	srv.Script(http.MethodPost, token.Path, stubserver.Text(http.StatusUnauthorized, "denied"))

	v, err := New(testConfig(srv.URL), WithHTTPClient(srv.Client()), noWait())
	require.NoError(t, err)

	_, err = v.EPayment.GetPayment(context.Background(), "order-1")
	require.ErrorIs(t, err, token.ErrRefresh)
	assert.True(t, transport.IsStatus(err, http.StatusUnauthorized))
	assert.Zero(t, srv.Hits(http.MethodGet, epayment.PaymentsPath+"/order-1"))
}

func TestObserverReceivesRequestsAndTokenRefreshes(t *testing.T) {
	srv := stubserver.New(t)
	scriptToken(srv)
	path := epayment.PaymentsPath + "/order-1/cancel"
	srv.Script(http.MethodPost, path,
		stubserver.Status(http.StatusServiceUnavailable),
		stubserver.JSON(http.StatusOK, map[string]any{"state": "TERMINATED", "reference": "order-1"}),
	)

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollectorWithRegistry(reg)
	v, err := New(testConfig(srv.URL), WithHTTPClient(srv.Client()), WithObserver(collector), noWait())
	require.NoError(t, err)

	got, err := v.EPayment.CancelPayment(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, model.StateTerminated, got.State)

	// token round trip, failed cancel, successful cancel
	count, err := testutil.GatherAndCount(reg, "vipps_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = testutil.GatherAndCount(reg, "vipps_token_refreshes_total", "vipps_retries_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDebugRaisesLogLevel(t *testing.T) {
	prev := logLevel.Level()
	t.Cleanup(func() { logLevel.SetLevel(prev) })

	cfg := testConfig("")
	cfg.Debug = true
	_, err := New(cfg)
	require.NoError(t, err)
	assert.True(t, logLevel.Enabled(zap.DebugLevel))

	SetLogLevel(zap.InfoLevel)
	assert.False(t, logLevel.Enabled(zap.DebugLevel))
}

func TestNewLeavesConfigUntouched(t *testing.T) {
	cfg := testConfig("")
	before := *cfg

	v, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, before, *cfg)
	assert.Zero(t, cfg.Timeouts.HTTP)
	assert.Equal(t, config.TestHost, v.BaseURL())
}

func TestNewAppliesTokenOptions(t *testing.T) {
	srv := stubserver.New(t)
	scriptToken(srv)
	hookErr := errors.New("unset")
	v, err := New(testConfig(srv.URL), WithHTTPClient(srv.Client()), noWait(),
		WithTokenOptions(token.WithRefreshHook(func(err error) { hookErr = err })))
	require.NoError(t, err)

	_, err = v.Tokens.Get(context.Background())
	require.NoError(t, err)
	assert.NoError(t, hookErr)
}
