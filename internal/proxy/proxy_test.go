package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestForwardRelaysPathQueryAndHeaders(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer upstream.Close()

	gateway := httptest.NewServer(New(upstream.URL, newTestLogger()).Router())
	defer gateway.Close()

	req, _ := http.NewRequest(http.MethodGet, gateway.URL+"/api/skiff/v1/admin/reviews?page=2", nil)
	req.Header.Set("Authorization", "Bearer tok")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/v1/admin/reviews", gotPath)
	assert.Equal(t, "page=2", gotQuery)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"data":[]}`, string(body))
}

func TestForwardRelaysPostBody(t *testing.T) {
	var gotBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer upstream.Close()

	gateway := httptest.NewServer(New(upstream.URL, newTestLogger()).Router())
	defer gateway.Close()

	resp, err := http.Post(gateway.URL+"/api/skiff/v1/admin/listing-revisions/1/approve", "application/json", strings.NewReader(`{"review_notes":"ok"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.JSONEq(t, `{"review_notes":"ok"}`, gotBody)
}

func TestForwardPreservesUpstreamErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Admin role required"}`))
	}))
	defer upstream.Close()

	gateway := httptest.NewServer(New(upstream.URL, newTestLogger()).Router())
	defer gateway.Close()

	resp, err := http.Get(gateway.URL + "/api/skiff/v1/admin/reviews")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message":"Admin role required"}`, string(body))
}

func TestForwardUnreachableUpstreamReturns502(t *testing.T) {
	gateway := httptest.NewServer(New("http://127.0.0.1:1", newTestLogger()).Router())
	defer gateway.Close()

	resp, err := http.Get(gateway.URL + "/api/skiff/v1/listings")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestRouterIgnoresOtherPaths(t *testing.T) {
	gateway := httptest.NewServer(New("http://127.0.0.1:1", newTestLogger()).Router())
	defer gateway.Close()

	resp, err := http.Get(gateway.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
