package token

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Set is the response of the access token endpoint. It is replaced as a
// whole on every refresh.
type Set struct {
	TokenType    string    `json:"token_type"`
	ExpiresIn    Seconds   `json:"expires_in"`
	ExtExpiresIn Seconds   `json:"ext_expires_in"`
	ExpiresOn    Timestamp `json:"expires_on"`
	NotBefore    Timestamp `json:"not_before"`
	Resource     string    `json:"resource"`
	AccessToken  string    `json:"access_token"`

	// IssuedAt is the local time the set was received.
	IssuedAt time.Time `json:"-"`
}

// ValidAt reports whether the token can still be used at now, keeping
// SafetyMargin in reserve before ExpiresOn.
func (s *Set) ValidAt(now time.Time) bool {
	if s == nil || s.AccessToken == "" {
		return false
	}
	return now.Add(SafetyMargin).Before(s.ExpiresOn.Time)
}

// Seconds is a duration in whole seconds. The API encodes it either as a
// JSON number or as a decimal string.
type Seconds int64

// Duration converts s to a time.Duration.
func (s Seconds) Duration() time.Duration {
	return time.Duration(s) * time.Second
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Seconds) UnmarshalJSON(data []byte) error {
	v, err := parseInt(data)
	if err != nil {
		return err
	}
	*s = Seconds(v)
	return nil
}

// Timestamp is a Unix time in seconds, encoded as a JSON number or a
// decimal string.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	v, err := parseInt(data)
	if err != nil {
		return err
	}
	if v == 0 {
		t.Time = time.Time{}
		return nil
	}
	t.Time = time.Unix(v, 0)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

func parseInt(data []byte) (int64, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}
		data = []byte(s)
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q as integer: %w", data, err)
	}
	return v, nil
}
