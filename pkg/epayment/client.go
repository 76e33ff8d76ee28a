package epayment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/vippsno/vipps-sdk-go/pkg/model"
	"github.com/vippsno/vipps-sdk-go/pkg/transport"
)

const (
	// PaymentsPath is the root of the payment resource.
	PaymentsPath = "/epayment/v1/payments"
	// TestPaymentsPath is the root of the test-only payment resource.
	TestPaymentsPath = "/epayment/v1/test/payments"
)

// TokenSource supplies access tokens. *token.Client satisfies it.
type TokenSource interface {
	Get(ctx context.Context) (string, error)
}

// CallOption customizes a single mutating call.
type CallOption func(*callOptions)

type callOptions struct {
	idempotencyKey string
}

// WithIdempotencyKey makes the call it is passed to use key instead of a
// generated one. It applies to that call only.
func WithIdempotencyKey(key string) CallOption {
	return func(o *callOptions) {
		o.idempotencyKey = key
	}
}

func idempotencyKey(opts []CallOption) string {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.idempotencyKey != "" {
		return o.idempotencyKey
	}
	return uuid.NewString()
}

// Client calls the ePayment API. It is safe for concurrent use.
type Client struct {
	sender  transport.Sender
	tokens  TokenSource
	baseURL string
	header  transport.Header
}

// New creates an ePayment client.
func New(sender transport.Sender, tokens TokenSource, baseURL string, id transport.Identity) *Client {
	return &Client{sender: sender, tokens: tokens, baseURL: baseURL, header: id.Header()}
}

// CreatePayment initiates a payment.
func (c *Client) CreatePayment(ctx context.Context, req *model.CreatePaymentRequest, opts ...CallOption) (*model.CreatePaymentResponse, error) {
	if req == nil {
		return nil, errors.New("epayment: nil create payment request")
	}
	var out model.CreatePaymentResponse
	if err := c.call(ctx, http.MethodPost, PaymentsPath, idempotencyKey(opts), req, &out); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return &out, nil
}

// GetPayment returns the current state of the payment for reference.
func (c *Client) GetPayment(ctx context.Context, reference model.Reference) (*model.GetPaymentResponse, error) {
	var out model.GetPaymentResponse
	if err := c.call(ctx, http.MethodGet, paymentPath(reference, ""), "", nil, &out); err != nil {
		return nil, fmt.Errorf("get payment %s: %w", reference, err)
	}
	return &out, nil
}

// GetPaymentEventLog returns all events recorded for the payment.
func (c *Client) GetPaymentEventLog(ctx context.Context, reference model.Reference) ([]model.PaymentEvent, error) {
	var out []model.PaymentEvent
	if err := c.call(ctx, http.MethodGet, paymentPath(reference, "/events"), "", nil, &out); err != nil {
		return nil, fmt.Errorf("get payment events %s: %w", reference, err)
	}
	return out, nil
}

// CancelPayment cancels an authorized, uncaptured payment.
func (c *Client) CancelPayment(ctx context.Context, reference model.Reference, opts ...CallOption) (*model.ModificationResponse, error) {
	var out model.ModificationResponse
	if err := c.call(ctx, http.MethodPost, paymentPath(reference, "/cancel"), idempotencyKey(opts), nil, &out); err != nil {
		return nil, fmt.Errorf("cancel payment %s: %w", reference, err)
	}
	return &out, nil
}

// CapturePayment captures all or part of the authorized amount.
func (c *Client) CapturePayment(ctx context.Context, reference model.Reference, req *model.CaptureModificationRequest, opts ...CallOption) (*model.ModificationResponse, error) {
	if req == nil {
		return nil, errors.New("epayment: nil capture request")
	}
	var out model.ModificationResponse
	if err := c.call(ctx, http.MethodPost, paymentPath(reference, "/capture"), idempotencyKey(opts), req, &out); err != nil {
		return nil, fmt.Errorf("capture payment %s: %w", reference, err)
	}
	return &out, nil
}

// RefundPayment refunds all or part of the captured amount.
func (c *Client) RefundPayment(ctx context.Context, reference model.Reference, req *model.RefundModificationRequest, opts ...CallOption) (*model.ModificationResponse, error) {
	if req == nil {
		return nil, errors.New("epayment: nil refund request")
	}
	var out model.ModificationResponse
	if err := c.call(ctx, http.MethodPost, paymentPath(reference, "/refund"), idempotencyKey(opts), req, &out); err != nil {
		return nil, fmt.Errorf("refund payment %s: %w", reference, err)
	}
	return &out, nil
}

// ForceApprovePayment approves a payment in the test environment without
// user interaction. req may be nil.
func (c *Client) ForceApprovePayment(ctx context.Context, reference model.Reference, req *model.ForceApprove) error {
	var body any
	if req != nil {
		body = req
	}
	path := TestPaymentsPath + "/" + url.PathEscape(reference) + "/approve"
	if err := c.call(ctx, http.MethodPost, path, "", body, nil); err != nil {
		return fmt.Errorf("force approve payment %s: %w", reference, err)
	}
	return nil
}

func paymentPath(reference model.Reference, suffix string) string {
	return PaymentsPath + "/" + url.PathEscape(reference) + suffix
}

// call authorizes and sends one API call. The token and idempotency key are
// fixed before the request is handed to the retrying sender. An empty key
// sends no Idempotency-Key header; a nil out discards the response value.
func (c *Client) call(ctx context.Context, method, path, key string, body, out any) error {
	accessToken, err := c.tokens.Get(ctx)
	if err != nil {
		return err
	}
	h := c.header.With(transport.AuthorizationHeader, transport.BearerToken(accessToken))
	if key != "" {
		h[transport.IdempotencyKeyHeader] = key
	}

	res, err := c.sender.Send(ctx, transport.Request{
		BaseURL: c.baseURL,
		Method:  method,
		Path:    path,
		Header:  h,
		Body:    body,
	})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return res.Decode(out)
}
