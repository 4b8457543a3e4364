package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallSendsBearerToken(t *testing.T) {
	var gotAuth, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := New(server.URL)
	client.SetToken("secret-token")

	_, err := client.Call(context.Background(), http.MethodGet, "/v1/auth/me", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestCallOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := New(server.URL).Call(context.Background(), http.MethodGet, "/v1/listings", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestCallNoContentSkipsParsing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	raw, err := New(server.URL).Call(context.Background(), http.MethodPost, "/v1/auth/logout", nil)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestCallEmptyBodyParsesAsEmptyObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	raw, err := New(server.URL).Call(context.Background(), http.MethodGet, "/v1/admin/reviews", nil)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Empty(t, out)
}

func TestCallErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"nested error message wins", `{"error":{"code":"forbidden","message":"Admin role required"},"message":"outer"}`, "Admin role required"},
		{"top-level message", `{"message":"Validation failed"}`, "Validation failed"},
		{"empty nested message falls through", `{"error":{"code":"x","message":""},"message":"outer"}`, "outer"},
		{"no message at all", `{"status":500}`, "Request failed."},
		{"non-JSON body", `<html>gateway error</html>`, "Request failed."},
		{"empty body", ``, "Request failed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := New(server.URL).Call(context.Background(), http.MethodPost, "/v1/anything", nil)
			require.Error(t, err)

			var reqErr *RequestError
			require.True(t, errors.As(err, &reqErr))
			assert.Equal(t, tt.want, reqErr.Message)
			assert.Equal(t, tt.want, reqErr.Error())
			assert.Equal(t, http.StatusUnprocessableEntity, reqErr.StatusCode)
		})
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL + "/")
	_, err := client.Call(context.Background(), http.MethodGet, "/v1/listings", nil)
	require.NoError(t, err)
	assert.Equal(t, "/v1/listings", gotPath)
}
