package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// DefaultMaxRetries is the number of re-attempts after the first failure,
// giving five attempts in total.
const DefaultMaxRetries = 4

// RetryPolicy bounds automatic retries. Zero values are replaced by
// WithDefaults; a negative MaxRetries disables retrying.
type RetryPolicy struct {
	MaxRetries      int           `json:"max_retries" yaml:"max_retries"`
	InitialInterval time.Duration `json:"initial_interval" yaml:"initial_interval"`
	MaxInterval     time.Duration `json:"max_interval" yaml:"max_interval"`
	Multiplier      float64       `json:"multiplier" yaml:"multiplier"`
}

// WithDefaults returns a copy of p with zero values replaced by defaults:
//
//	MaxRetries:      4
//	InitialInterval: 1s
//	MaxInterval:     30s
//	Multiplier:      2
func (p RetryPolicy) WithDefaults() RetryPolicy {
	pp := p
	if pp.MaxRetries == 0 {
		pp.MaxRetries = DefaultMaxRetries
	}
	if pp.InitialInterval == 0 {
		pp.InitialInterval = time.Second
	}
	if pp.MaxInterval == 0 {
		pp.MaxInterval = 30 * time.Second
	}
	if pp.Multiplier == 0 {
		pp.Multiplier = 2
	}
	return pp
}

// Operation is one attempt of a retried call.
type Operation func(ctx context.Context) (Result, error)

// Retrier re-invokes failing operations with exponential backoff. It does
// not distinguish error kinds: every failure is retried until the bound is
// reached, and the last error is returned unchanged.
type Retrier struct {
	policy     RetryPolicy
	newBackOff func() backoff.BackOff
}

// RetryOption customizes a Retrier.
type RetryOption func(*Retrier)

// WithBackOff replaces the exponential schedule, e.g. with
// backoff.ZeroBackOff in tests. The attempt bound still applies.
func WithBackOff(fn func() backoff.BackOff) RetryOption {
	return func(r *Retrier) {
		r.newBackOff = fn
	}
}

// NewRetrier creates a Retrier for policy (defaults applied).
func NewRetrier(policy RetryPolicy, opts ...RetryOption) *Retrier {
	r := &Retrier{policy: policy.WithDefaults()}
	r.newBackOff = r.exponential
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MaxAttempts is the total number of times Do may invoke an operation.
func (r *Retrier) MaxAttempts() int {
	if r.policy.MaxRetries < 0 {
		return 1
	}
	return r.policy.MaxRetries + 1
}

func (r *Retrier) exponential() backoff.BackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     r.policy.InitialInterval,
		RandomizationFactor: 0,
		Multiplier:          r.policy.Multiplier,
		MaxInterval:         r.policy.MaxInterval,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	return b
}

// Do invokes op until it succeeds or MaxAttempts is reached. Waiting between
// attempts stops early when ctx is done; the returned error then wraps both
// ctx.Err() and the error of the last attempt.
func (r *Retrier) Do(ctx context.Context, op Operation) (Result, error) {
	var b backoff.BackOff = &backoff.StopBackOff{}
	if r.policy.MaxRetries > 0 {
		b = backoff.WithMaxRetries(r.newBackOff(), uint64(r.policy.MaxRetries))
	}
	b = backoff.WithContext(b, ctx)

	attempt := 0
	var lastErr error
	res, err := backoff.RetryNotifyWithData(func() (Result, error) {
		attempt++
		res, err := op(ctx)
		lastErr = err
		return res, err
	}, b, func(err error, wait time.Duration) {
		zap.L().Debug("retrying request",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", r.MaxAttempts()),
			zap.Duration("wait", wait),
			zap.Error(err))
	})
	if ctxErr := ctx.Err(); ctxErr != nil && lastErr != nil && errors.Is(err, ctxErr) {
		if errors.Is(lastErr, ctxErr) {
			return res, lastErr
		}
		return res, fmt.Errorf("%w: %w", ctxErr, lastErr)
	}
	return res, err
}
