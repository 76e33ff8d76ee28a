// Package sdk is the entry point of the Vipps MobilePay SDK. It wires the
// Checkout and ePayment clients to one HTTP client, one retry policy and
// one access token cache.
package sdk

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vippsno/vipps-sdk-go/pkg/checkout"
	"github.com/vippsno/vipps-sdk-go/pkg/config"
	"github.com/vippsno/vipps-sdk-go/pkg/epayment"
	"github.com/vippsno/vipps-sdk-go/pkg/token"
	"github.com/vippsno/vipps-sdk-go/pkg/transport"
)

// logLevel controls the default global logger installed by init.
var logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            logLevel,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// SetLogLevel sets the level of the global logger installed by init.
func SetLogLevel(level zapcore.Level) {
	logLevel.SetLevel(level)
}

// TokenRefreshObserver is implemented by observers that also track token
// refreshes, such as metrics.Collector.
type TokenRefreshObserver interface {
	ObserveTokenRefresh(err error)
}

// Vipps bundles the API clients built from one Config.
type Vipps struct {
	Checkout *checkout.Client
	EPayment *epayment.Client
	// Tokens is the access token cache used by EPayment.
	Tokens *token.Client

	config *config.Config
}

type options struct {
	doer      transport.Doer
	observer  transport.Observer
	retryOpts []transport.RetryOption
	tokenOpts []token.Option
}

// Option customizes New.
type Option func(*options)

// WithHTTPClient replaces the default *http.Client. Config.Timeouts.HTTP is
// not applied to a supplied client.
func WithHTTPClient(doer transport.Doer) Option {
	return func(o *options) {
		o.doer = doer
	}
}

// WithObserver attaches an Observer to every request. If it also implements
// TokenRefreshObserver it is notified about token refreshes.
func WithObserver(obs transport.Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithRetryOptions customizes the shared Retrier.
func WithRetryOptions(opts ...transport.RetryOption) Option {
	return func(o *options) {
		o.retryOpts = append(o.retryOpts, opts...)
	}
}

// WithTokenOptions customizes the access token cache.
func WithTokenOptions(opts ...token.Option) Option {
	return func(o *options) {
		o.tokenOpts = append(o.tokenOpts, opts...)
	}
}

// New validates a copy of cfg and builds the API clients; the caller's
// Config is left untouched. The base URL is resolved once from cfg and the
// process environment is not consulted.
//
// cfg.Debug raises the level of the global logger installed by this package
// to debug for the whole process. It is never lowered again by New; call
// SetLogLevel or zap.ReplaceGlobals to change it.
func New(cfg *config.Config, opts ...Option) (*Vipps, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	c := *cfg
	cfg = &c
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new sdk: %w", err)
	}
	if cfg.Debug {
		logLevel.SetLevel(zap.DebugLevel)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.doer == nil {
		o.doer = transport.NewHTTPClient(cfg.Timeouts.HTTP)
	}

	clientOpts := []transport.ClientOption{
		transport.WithRetrier(transport.NewRetrier(cfg.Retry, o.retryOpts...)),
	}
	if o.observer != nil {
		clientOpts = append(clientOpts, transport.WithObserver(o.observer))
		if tr, ok := o.observer.(TokenRefreshObserver); ok {
			o.tokenOpts = append([]token.Option{token.WithRefreshHook(tr.ObserveTokenRefresh)}, o.tokenOpts...)
		}
	}
	sender := transport.NewClient(o.doer, cfg.Retry, clientOpts...)

	baseURL := cfg.BaseURL()
	id := cfg.Identity(SystemName, Version)

	tokens := token.New(sender, baseURL, token.Credentials{
		ClientID:        cfg.ClientID,
		ClientSecret:    cfg.ClientSecret,
		SubscriptionKey: cfg.SubscriptionKey,
	}, o.tokenOpts...)

	zap.L().Debug("vipps sdk initialized",
		zap.String("base_url", baseURL),
		zap.String("merchant_serial_number", cfg.MerchantSerialNumber),
		zap.Bool("test_mode", cfg.UseTestMode))

	return &Vipps{
		Checkout: checkout.New(sender, baseURL, id, checkout.Credentials{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
		}),
		EPayment: epayment.New(sender, tokens, baseURL, id),
		Tokens:   tokens,
		config:   cfg,
	}, nil
}

// BaseURL returns the API host the clients talk to.
func (v *Vipps) BaseURL() string {
	return v.config.BaseURL()
}
