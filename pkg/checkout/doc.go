// Package checkout is the client for the Vipps MobilePay Checkout v3 API.
//
// Checkout calls authenticate with the merchant's client id and secret as
// request headers instead of a bearer token:
//
//	cli := checkout.New(sender, cfg.BaseURL(), identity, checkout.Credentials{
//		ClientID:     cfg.ClientID,
//		ClientSecret: cfg.ClientSecret,
//	})
//	session, err := cli.CreateSession(ctx, &model.CheckoutInitiateSessionRequest{...})
//	...
//	details, err := cli.GetSessionDetails(ctx, reference)
//
// Failed calls are retried by the sender. Non-2xx responses surface as
// *transport.RequestError.
package checkout
