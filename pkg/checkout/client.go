package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vippsno/vipps-sdk-go/pkg/model"
	"github.com/vippsno/vipps-sdk-go/pkg/transport"
)

// SessionPath is the root of the Checkout session resource.
const SessionPath = "/checkout/v3/session"

// Credentials authenticate Checkout calls.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Client calls the Checkout API. It is safe for concurrent use.
type Client struct {
	sender  transport.Sender
	baseURL string
	header  transport.Header
}

// New creates a Checkout client. The header set is computed once from id
// and creds and sent unchanged on every call.
func New(sender transport.Sender, baseURL string, id transport.Identity, creds Credentials) *Client {
	h := id.Header()
	h[transport.ClientIDHeader] = creds.ClientID
	h[transport.ClientSecretHeader] = creds.ClientSecret
	return &Client{sender: sender, baseURL: baseURL, header: h}
}

// CreateSession starts a Checkout session.
func (c *Client) CreateSession(ctx context.Context, req *model.CheckoutInitiateSessionRequest) (*model.CheckoutInitiateSessionResponse, error) {
	if req == nil {
		return nil, errors.New("checkout: nil session request")
	}
	var out model.CheckoutInitiateSessionResponse
	if err := c.call(ctx, http.MethodPost, SessionPath, req, &out); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &out, nil
}

// GetSessionDetails returns the current state of the session for reference.
func (c *Client) GetSessionDetails(ctx context.Context, reference string) (*model.CheckoutSessionResponse, error) {
	var out model.CheckoutSessionResponse
	if err := c.call(ctx, http.MethodGet, SessionPath+"/"+url.PathEscape(reference), nil, &out); err != nil {
		return nil, fmt.Errorf("get session %s: %w", reference, err)
	}
	return &out, nil
}

func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	res, err := c.sender.Send(ctx, transport.Request{
		BaseURL: c.baseURL,
		Method:  method,
		Path:    path,
		Header:  c.header,
		Body:    body,
	})
	if err != nil {
		return err
	}
	return res.Decode(out)
}
