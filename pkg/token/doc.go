// Package token caches the Vipps MobilePay access token used by the
// ePayment API.
//
// # Fetching
//
// A Client obtains a token with POST /accesstoken/get, authenticating with
// the client_id, client_secret and Ocp-Apim-Subscription-Key headers. The
// response is kept as a Set and replaced as a whole on every refresh.
//
//	tokens := token.New(sender, "https://apitest.vipps.no", token.Credentials{
//		ClientID:        "YOUR_CLIENT_ID",
//		ClientSecret:    "YOUR_CLIENT_SECRET",
//		SubscriptionKey: "YOUR_SUBSCRIPTION_KEY",
//	})
//	accessToken, err := tokens.Get(ctx)
//
// # Expiry
//
// A cached token is reused until it is within SafetyMargin (three minutes)
// of its expires_on time. expires_in and expires_on are accepted either as
// JSON numbers or as numeric strings.
//
// # Concurrency
//
// Callers that find the cache stale at the same time share one refresh.
// A failed refresh leaves the previous Set untouched and is reported
// wrapped in ErrRefresh; the next Get tries again. WithRefreshHook lets
// metrics observe every refresh outcome.
package token
