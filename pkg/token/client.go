package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/vippsno/vipps-sdk-go/pkg/transport"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// Path is the token issuance endpoint.
	Path = "/accesstoken/get"
	// SafetyMargin is how long before expiry a cached token stops being used.
	SafetyMargin = 3 * time.Minute
)

// ErrRefresh wraps every failure to obtain a new token.
var ErrRefresh = errors.New("access token refresh failed")

// Credentials identify the merchant towards the token endpoint.
type Credentials struct {
	ClientID        string
	ClientSecret    string
	SubscriptionKey string
}

func (c Credentials) header() transport.Header {
	return transport.Header{
		transport.ClientIDHeader:        c.ClientID,
		transport.ClientSecretHeader:    c.ClientSecret,
		transport.SubscriptionKeyHeader: c.SubscriptionKey,
	}
}

// Client holds at most one token Set. It is safe for concurrent use.
type Client struct {
	sender  transport.Sender
	baseURL string
	header  transport.Header
	now     func() time.Time
	hook    func(error)

	mu  sync.RWMutex
	set *Set

	group singleflight.Group
}

// Option customizes a Client.
type Option func(*Client)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithRefreshHook registers fn to be called after every refresh attempt
// sequence with its final error (nil on success).
func WithRefreshHook(fn func(error)) Option {
	return func(c *Client) {
		c.hook = fn
	}
}

// New creates a token Client that requests tokens from baseURL through
// sender. The cache starts empty.
func New(sender transport.Sender, baseURL string, creds Credentials, opts ...Option) *Client {
	c := &Client{
		sender:  sender,
		baseURL: baseURL,
		header:  creds.header(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns a valid access token, refreshing it when the cached one is
// missing or about to expire. On failure the previous cache content is
// kept and the next call tries again.
func (c *Client) Get(ctx context.Context) (string, error) {
	if set := c.current(); set.ValidAt(c.now()) {
		return set.AccessToken, nil
	}

	// The refresh is shared by all waiters, so one caller's cancellation
	// must not fail the others.
	ch := c.group.DoChan("token", func() (any, error) {
		if set := c.current(); set.ValidAt(c.now()) {
			return set, nil
		}
		return c.refresh(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(*Set).AccessToken, nil
	}
}

func (c *Client) refresh(ctx context.Context) (*Set, error) {
	zap.L().Debug("refreshing access token", zap.String("host", c.baseURL))

	set, err := c.fetch(ctx)
	if c.hook != nil {
		c.hook(err)
	}
	if err != nil {
		zap.L().Warn("access token refresh failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrRefresh, err)
	}

	c.mu.Lock()
	c.set = set
	c.mu.Unlock()

	zap.L().Debug("access token refreshed", zap.Time("expires_on", set.ExpiresOn.Time))
	return set, nil
}

func (c *Client) fetch(ctx context.Context) (*Set, error) {
	res, err := c.sender.Send(ctx, transport.Request{
		BaseURL: c.baseURL,
		Method:  http.MethodPost,
		Path:    Path,
		Header:  c.header,
	})
	if err != nil {
		return nil, err
	}

	set := new(Set)
	if err := res.Decode(set); err != nil {
		return nil, err
	}
	if set.AccessToken == "" {
		return nil, errors.New("response carries no access_token")
	}
	set.IssuedAt = c.now()
	if set.ExpiresOn.IsZero() && set.ExpiresIn > 0 {
		set.ExpiresOn = Timestamp{set.IssuedAt.Add(set.ExpiresIn.Duration())}
	}
	return set, nil
}

func (c *Client) current() *Set {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set
}

// Invalidate drops the cached token so the next Get refreshes it. Call it
// after the API answers 401 Unauthorized.
func (c *Client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set = nil
}

// Expiry returns the expiry of the cached token, or the zero time when none
// is cached.
func (c *Client) Expiry() time.Time {
	set := c.current()
	if set == nil {
		return time.Time{}
	}
	return set.ExpiresOn.Time
}

// Valid reports whether Get would currently return without a network call.
func (c *Client) Valid() bool {
	return c.current().ValidAt(c.now())
}
