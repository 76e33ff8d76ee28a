package stubserver

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerScriptsAndRecords(t *testing.T) {
	s := New(t)
	s.Script(http.MethodPost, "/things", Status(http.StatusBadGateway), JSON(http.StatusCreated, map[string]string{"id": "1"}))

	for i, want := range []int{http.StatusBadGateway, http.StatusCreated, http.StatusCreated} {
		req, err := http.NewRequest(http.MethodPost, s.URL+"/things", strings.NewReader(`{"n":1}`))
		require.NoError(t, err)
		req.Header["client_id"] = []string{"abc"}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, want, resp.StatusCode, "request %d", i)
		if want == http.StatusCreated {
			assert.JSONEq(t, `{"id":"1"}`, string(body))
		}
	}

	got := s.RequestsTo(http.MethodPost, "/things")
	require.Len(t, got, 3)
	assert.Equal(t, `{"n":1}`, string(got[0].Body))
	assert.Equal(t, "abc", got[0].Header.Get("client_id"))
	assert.Equal(t, 3, s.Hits(http.MethodPost, "/things"))
}

func TestServerUnscriptedRouteIsNotFound(t *testing.T) {
	s := New(t)
	resp, err := http.Get(s.URL + "/missing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Len(t, s.Requests(), 1)
}
