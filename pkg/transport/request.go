package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Doer executes a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request describes one API call. It is built per call and not modified
// afterwards.
type Request struct {
	// BaseURL is scheme and host, e.g. "https://apitest.vipps.no".
	BaseURL string
	Method  string
	Path    string
	Header  Header
	// Body is JSON-encoded when non-nil.
	Body any
}

// Kind classifies a successful response by its declared content type.
type Kind int

const (
	// KindEmpty is a success without a decodable value.
	KindEmpty Kind = iota
	// KindJSON is a success with a JSON payload.
	KindJSON
	// KindText is a success with a text/plain payload.
	KindText
)

// String returns a short name for k.
func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindText:
		return "text"
	default:
		return "empty"
	}
}

// Result is the decoded outcome of a successful round trip. At most one of
// JSON or Text is set, according to Kind.
type Result struct {
	Status int
	Kind   Kind
	JSON   json.RawMessage
	Text   string
}

// Decode unmarshals a JSON result into v. Results of any other kind yield
// ErrUnexpectedContent.
func (r Result) Decode(v any) error {
	if r.Kind != KindJSON {
		return fmt.Errorf("%w (got %s)", ErrUnexpectedContent, r.Kind)
	}
	if err := json.Unmarshal(r.JSON, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// Do performs exactly one HTTP round trip for req and classifies the
// response. A status outside 200-299 yields a *RequestError; a 2xx response
// is decoded by its Content-Type:
//
//	application/json -> KindJSON (the body must be valid JSON)
//	text/plain       -> KindText
//	anything else    -> KindEmpty
func Do(ctx context.Context, doer Doer, req Request) (Result, error) {
	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return Result{}, fmt.Errorf("encode %s %s request: %w", req.Method, req.Path, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, strings.TrimRight(req.BaseURL, "/")+req.Path, body)
	if err != nil {
		return Result{}, fmt.Errorf("build %s %s request: %w", req.Method, req.Path, err)
	}
	req.Header.apply(httpReq.Header)

	resp, err := doer.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read %s %s response: %w", req.Method, req.Path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return Result{}, &RequestError{
			Method:     req.Method,
			Path:       req.Path,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	res, err := decode(req.Path, resp.Header.Get("Content-Type"), raw)
	if err != nil {
		return Result{}, err
	}
	res.Status = resp.StatusCode
	return res, nil
}

func decode(path, contentType string, raw []byte) (Result, error) {
	switch {
	case strings.Contains(contentType, "application/json"):
		if !json.Valid(raw) {
			return Result{}, fmt.Errorf("%s: %w", path, ErrDecode)
		}
		return Result{Kind: KindJSON, JSON: json.RawMessage(raw)}, nil
	case strings.Contains(contentType, "text/plain"):
		return Result{Kind: KindText, Text: string(raw)}, nil
	default:
		return Result{Kind: KindEmpty}, nil
	}
}
