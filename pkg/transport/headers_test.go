package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityHeader(t *testing.T) {
	h := Identity{
		SubscriptionKey:      "sub",
		MerchantSerialNumber: "123456",
		SystemName:           "Vipps Go SDK",
		SystemVersion:        "0.9.0",
		PluginName:           "acme-plugin",
		PluginVersion:        "4.5.6",
	}.Header()

	assert.Equal(t, Header{
		"Content-type":                `application/json; charset="utf-8"`,
		"Ocp-Apim-Subscription-Key":   "sub",
		"Merchant-Serial-Number":      "123456",
		"Vipps-System-Name":           "Vipps Go SDK",
		"Vipps-System-Version":        "0.9.0",
		"Vipps-System-Plugin-Name":    "acme-plugin",
		"Vipps-System-Plugin-Version": "4.5.6",
	}, h)
}

func TestHeaderWithDoesNotMutate(t *testing.T) {
	base := Header{"a": "1"}
	next := base.With(AuthorizationHeader, BearerToken("tok"))

	assert.Equal(t, "Bearer tok", next[AuthorizationHeader])
	_, ok := base[AuthorizationHeader]
	assert.False(t, ok)
	assert.Equal(t, "1", next["a"])
}
