// Package stubserver is an in-process stand-in for the Vipps MobilePay API.
// It records every request and answers from per-route response scripts.
package stubserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// Request is a recorded incoming request.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Response is a scripted answer.
type Response struct {
	Status      int
	ContentType string
	Body        string
}

// JSON builds a Response with an application/json body encoding v.
func JSON(status int, v any) Response {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return Response{Status: status, ContentType: "application/json; charset=utf-8", Body: string(raw)}
}

// Text builds a text/plain Response.
func Text(status int, body string) Response {
	return Response{Status: status, ContentType: "text/plain; charset=utf-8", Body: body}
}

// Status builds a Response without a body.
func Status(status int) Response {
	return Response{Status: status}
}

// Server serves scripted responses. Unscripted routes answer 404.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	scripts  map[string][]Response
	requests []Request
}

// New starts a Server and registers its shutdown with t.
func New(t testing.TB) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{scripts: make(map[string][]Response)}
	r := gin.New()
	r.NoRoute(s.handle)
	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Script queues responses for method and path. Responses are served in
// order; the last one repeats once the queue is drained.
func (s *Server) Script(method, path string, responses ...Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	s.scripts[key] = append(s.scripts[key], responses...)
}

// Requests returns a copy of all recorded requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsTo returns the recorded requests for method and path.
func (s *Server) RequestsTo(method, path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Hits counts the recorded requests for method and path.
func (s *Server) Hits(method, path string) int {
	return len(s.RequestsTo(method, path))
}

func (s *Server) handle(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	path := c.Request.URL.EscapedPath()

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: c.Request.Method,
		Path:   path,
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
	key := c.Request.Method + " " + path
	queue := s.scripts[key]
	var resp Response
	switch {
	case len(queue) == 0:
		resp = Text(http.StatusNotFound, "no script for "+key)
	case len(queue) == 1:
		resp = queue[0]
	default:
		resp = queue[0]
		s.scripts[key] = queue[1:]
	}
	s.mu.Unlock()

	if resp.Body == "" && resp.ContentType == "" {
		c.Status(resp.Status)
		return
	}
	c.Data(resp.Status, resp.ContentType, []byte(resp.Body))
}
