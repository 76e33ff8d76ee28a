// Package transport is the request layer of the SDK: a single JSON-over-HTTP
// round trip (Do), a bounded retry wrapper (Retrier) and the Client that
// couples both for the endpoint packages.
//
// # Round trip
//
// Do sends one request and reads the whole response before classifying it.
// Statuses outside 200-299 become a *RequestError holding the path, status
// and raw body. Successful responses are decoded by Content-Type:
//
//	application/json -> Result{Kind: KindJSON}
//	text/plain       -> Result{Kind: KindText}
//	anything else    -> Result{Kind: KindEmpty}
//
// # Retries
//
// Retrier re-invokes a failing operation up to RetryPolicy.MaxRetries times
// (4 by default, five attempts in total) with exponential backoff from
// github.com/cenkalti/backoff/v4. Every error is retried; there is no
// circuit breaker. Mutating endpoints stay safe because their idempotency
// key is generated before the retried closure and reused by every attempt.
//
//	c := transport.NewClient(http.DefaultClient, transport.RetryPolicy{})
//	res, err := c.Get(ctx, "https://apitest.vipps.no", "/epayment/v1/payments/ref", hdr)
//	if err != nil {
//		if transport.IsStatus(err, http.StatusNotFound) {
//			// ...
//		}
//		return err
//	}
//	var payment model.GetPaymentResponse
//	err = res.Decode(&payment)
//
// # Headers
//
// Header keeps keys exactly as written; Vipps expects lower-case names such
// as "client_id" that http.Header would canonicalize.
package transport
