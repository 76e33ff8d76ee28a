package token

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vippsno/vipps-sdk-go/pkg/transport"
)

func TestSetDecodesStringAndNumberFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"strings", `{"token_type":"Bearer","expires_in":"86398","ext_expires_in":"0","expires_on":"1700086398","not_before":"1700000000","resource":"r","access_token":"eyJ"}`},
		{"numbers", `{"token_type":"Bearer","expires_in":86398,"ext_expires_in":0,"expires_on":1700086398,"not_before":1700000000,"resource":"r","access_token":"eyJ"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Set
			require.NoError(t, json.Unmarshal([]byte(tt.body), &s))
			assert.Equal(t, "eyJ", s.AccessToken)
			assert.Equal(t, "Bearer", s.TokenType)
			assert.Equal(t, 86398*time.Second, s.ExpiresIn.Duration())
			assert.Equal(t, int64(1700086398), s.ExpiresOn.Unix())
			assert.Equal(t, int64(1700000000), s.NotBefore.Unix())
		})
	}
}

func TestSetRejectsGarbage(t *testing.T) {
	var s Set
	err := json.Unmarshal([]byte(`{"expires_on":"soon"}`), &s)
	assert.Error(t, err)
}

func TestValidAt(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s := &Set{AccessToken: "tok", ExpiresOn: Timestamp{now.Add(10 * time.Minute)}}

	assert.True(t, s.ValidAt(now))
	assert.True(t, s.ValidAt(now.Add(7*time.Minute-time.Nanosecond)))
	assert.False(t, s.ValidAt(now.Add(7*time.Minute)))
	assert.False(t, (*Set)(nil).ValidAt(now))
	assert.False(t, (&Set{ExpiresOn: Timestamp{now.Add(time.Hour)}}).ValidAt(now))
}

func TestTimestampMarshal(t *testing.T) {
	raw, err := json.Marshal(Timestamp{time.Unix(42, 0)})
	require.NoError(t, err)
	assert.Equal(t, "42", string(raw))
}

func TestExpiresOnFallsBackToExpiresIn(t *testing.T) {
	clk := newClock()
	sender := &fakeSender{respond: func(int32) (transport.Result, error) {
		return transport.Result{
			Kind: transport.KindJSON,
			JSON: json.RawMessage(`{"token_type":"Bearer","expires_in":"3600","access_token":"tok"}`),
		}, nil
	}}
	c := New(sender, "https://apitest.vipps.no", Credentials{}, WithClock(clk.Now))

	_, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Add(time.Hour), c.Expiry())
}

func jsonResponse(body []byte) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(string(body))),
	}
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }
