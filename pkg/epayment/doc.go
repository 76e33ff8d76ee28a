// Package epayment is the client for the Vipps MobilePay ePayment v1 API.
//
// Every call is authorized with a bearer token taken from a TokenSource,
// normally a *token.Client shared by all calls. The token is obtained once
// per call, before the request is sent and retried.
//
// Create, cancel, capture and refund carry an Idempotency-Key header. A
// fresh UUID v4 is generated for every method call and reused by all
// retries of that call, so the server can collapse duplicate attempts.
// Callers that want to repeat a call safely across process restarts can
// supply their own key for that one call:
//
//	_, err := cli.CapturePayment(ctx, "order-123", &model.CaptureModificationRequest{...},
//		epayment.WithIdempotencyKey("capture-order-123-1"))
//
// ForceApprovePayment exists only in the test environment and is sent
// without an idempotency key.
package epayment
