package transport

import "net/http"

// Header names used by the Vipps MobilePay API. The casing is sent on the
// wire exactly as written here.
const (
	// ClientIDHeader carries the merchant's client id.
	ClientIDHeader = "client_id"
	// ClientSecretHeader carries the merchant's client secret.
	ClientSecretHeader = "client_secret"
	// SubscriptionKeyHeader is the API Management subscription key.
	SubscriptionKeyHeader = "Ocp-Apim-Subscription-Key"
	// MerchantSerialNumberHeader identifies the sales unit (MSN).
	MerchantSerialNumberHeader = "Merchant-Serial-Number"
	// SystemNameHeader names the system making the call (this SDK).
	SystemNameHeader = "Vipps-System-Name"
	// SystemVersionHeader is the version of the calling system.
	SystemVersionHeader = "Vipps-System-Version"
	// SystemPluginNameHeader names the plugin or integration built on the SDK.
	SystemPluginNameHeader = "Vipps-System-Plugin-Name"
	// SystemPluginVersionHeader is the version of the plugin.
	SystemPluginVersionHeader = "Vipps-System-Plugin-Version"
	// ContentTypeHeader is the request content type, sent with a
	// lower-case "type".
	ContentTypeHeader = "Content-type"
	// AuthorizationHeader carries "Bearer <access token>".
	AuthorizationHeader = "Authorization"
	// IdempotencyKeyHeader lets the server collapse retried mutating calls.
	IdempotencyKeyHeader = "Idempotency-Key"

	// JSONContentType is sent as Content-type on every request.
	JSONContentType = `application/json; charset="utf-8"`
)

// Header is a set of request headers keyed by their exact wire name.
// Unlike http.Header, keys are not canonicalized.
type Header map[string]string

// Clone returns a copy of h that can be modified independently.
func (h Header) Clone() Header {
	out := make(Header, len(h)+2)
	for k, v := range h {
		out[k] = v
	}
	return out
}

// With returns a copy of h with key set to value.
func (h Header) With(key, value string) Header {
	out := h.Clone()
	out[key] = value
	return out
}

// apply writes h into an http.Header without canonicalizing the keys.
func (h Header) apply(dst http.Header) {
	for k, v := range h {
		dst[k] = []string{v}
	}
}

// Identity describes the merchant and calling system. Every API request
// carries these values.
type Identity struct {
	SubscriptionKey      string
	MerchantSerialNumber string
	SystemName           string
	SystemVersion        string
	PluginName           string
	PluginVersion        string
}

// Header builds the header set shared by all endpoint calls.
func (id Identity) Header() Header {
	return Header{
		ContentTypeHeader:          JSONContentType,
		SubscriptionKeyHeader:      id.SubscriptionKey,
		MerchantSerialNumberHeader: id.MerchantSerialNumber,
		SystemNameHeader:           id.SystemName,
		SystemVersionHeader:        id.SystemVersion,
		SystemPluginNameHeader:     id.PluginName,
		SystemPluginVersionHeader:  id.PluginVersion,
	}
}

// BearerToken formats an Authorization header value.
func BearerToken(token string) string {
	return "Bearer " + token
}
