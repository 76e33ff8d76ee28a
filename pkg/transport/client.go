package transport

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Sender performs a retried API call. *Client satisfies it; endpoint
// clients depend on this interface so tests can substitute it.
type Sender interface {
	Send(ctx context.Context, req Request) (Result, error)
}

// Observer is notified about round trips and retries. Implementations must
// be safe for concurrent use.
type Observer interface {
	// ObserveRequest is called once per round trip. status is 0 when no
	// response was received.
	ObserveRequest(method, path string, status int, elapsed time.Duration, err error)
	// ObserveRetry is called before every re-attempt; attempt starts at 2.
	ObserveRetry(method, path string, attempt int, err error)
}

// Client couples the single round trip with the retry wrapper.
type Client struct {
	doer     Doer
	retrier  *Retrier
	observer Observer
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithObserver attaches an Observer (e.g. metrics.Collector).
func WithObserver(o Observer) ClientOption {
	return func(c *Client) {
		c.observer = o
	}
}

// WithRetrier replaces the Retrier built from the policy.
func WithRetrier(r *Retrier) ClientOption {
	return func(c *Client) {
		c.retrier = r
	}
}

// NewHTTPClient returns the *http.Client used when none is supplied.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// NewClient creates a Client issuing requests through doer and retrying
// according to policy.
func NewClient(doer Doer, policy RetryPolicy, opts ...ClientOption) *Client {
	c := &Client{doer: doer}
	for _, opt := range opts {
		opt(c)
	}
	if c.retrier == nil {
		c.retrier = NewRetrier(policy)
	}
	return c
}

// RoundTrip performs a single attempt of req without retrying.
func (c *Client) RoundTrip(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	res, err := Do(ctx, c.doer, req)
	elapsed := time.Since(start)

	status := res.Status
	if code, ok := StatusCode(err); ok {
		status = code
	}
	if c.observer != nil {
		c.observer.ObserveRequest(req.Method, req.Path, status, elapsed, err)
	}
	zap.L().Debug("vipps request",
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.Stringer("result", res.Kind),
		zap.Duration("elapsed", elapsed),
		zap.Error(err))
	return res, err
}

// Send performs req with automatic retries. The same req, headers included,
// is reused for every attempt.
func (c *Client) Send(ctx context.Context, req Request) (Result, error) {
	attempt := 0
	var lastErr error
	return c.retrier.Do(ctx, func(ctx context.Context) (Result, error) {
		attempt++
		if attempt > 1 && c.observer != nil {
			c.observer.ObserveRetry(req.Method, req.Path, attempt, lastErr)
		}
		res, err := c.RoundTrip(ctx, req)
		lastErr = err
		return res, err
	})
}

// Get sends a retried GET request.
func (c *Client) Get(ctx context.Context, baseURL, path string, header Header) (Result, error) {
	return c.Send(ctx, Request{BaseURL: baseURL, Method: http.MethodGet, Path: path, Header: header})
}

// Post sends a retried POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, baseURL, path string, header Header, body any) (Result, error) {
	return c.Send(ctx, Request{BaseURL: baseURL, Method: http.MethodPost, Path: path, Header: header, Body: body})
}
