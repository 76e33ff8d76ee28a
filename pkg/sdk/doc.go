// Package sdk provides the high-level entry point for the Vipps MobilePay API.
//
// New builds a Checkout client and an ePayment client from one
// config.Config. Both share an *http.Client, a retry policy and, for
// ePayment, an access token cache.
//
// # Quick Start
//
//	import (
//		"github.com/vippsno/vipps-sdk-go/pkg/config"
//		"github.com/vippsno/vipps-sdk-go/pkg/model"
//		"github.com/vippsno/vipps-sdk-go/pkg/sdk"
//	)
//
//	func main() {
//		cfg := &config.Config{
//			ClientID:             "YOUR_CLIENT_ID",
//			ClientSecret:         "YOUR_CLIENT_SECRET",
//			SubscriptionKey:      "YOUR_SUBSCRIPTION_KEY",
//			MerchantSerialNumber: "123456",
//			PluginName:           "acme-plugin",
//			PluginVersion:        "4.5.6",
//			UseTestMode:          true,
//		}
//
//		vipps, err := sdk.New(cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		payment, err := vipps.EPayment.CreatePayment(ctx, &model.CreatePaymentRequest{
//			Amount:        model.Amount{Currency: model.CurrencyNOK, Value: 1000},
//			PaymentMethod: model.PaymentMethod{Type: model.PaymentMethodWallet},
//			Reference:     "order-123",
//			UserFlow:      model.UserFlowWebRedirect,
//			ReturnURL:     "https://example.com/return",
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(payment.RedirectURL)
//	}
//
// # Retries
//
// Every call is attempted up to five times (Config.Retry.MaxRetries plus
// one) with exponential backoff starting at one second. All errors are
// retried, including 4xx responses; the last error is returned.
//
// # Errors
//
// A non-2xx response is returned as *transport.RequestError carrying the
// status code and the raw response body:
//
//	var reqErr *transport.RequestError
//	if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound {
//		...
//	}
//
// Token failures wrap token.ErrRefresh and invalid configuration wraps
// config.ErrInvalid.
//
// # Logging
//
// The package installs a console zap logger as the global logger at info
// level. Config.Debug lowers it to debug, which logs every round trip,
// retry and token refresh without secrets. Replace it with
// zap.ReplaceGlobals to integrate with application logging.
//
// # Metrics
//
// Pass a metrics.Collector with WithObserver to export Prometheus metrics:
//
//	collector := metrics.NewCollectorWithRegistry(prometheus.DefaultRegisterer)
//	vipps, err := sdk.New(cfg, sdk.WithObserver(collector))
//
// # Thread Safety
//
// All clients are safe for concurrent use.
package sdk
