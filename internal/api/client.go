package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the Admin API address used when none is configured.
const DefaultBaseURL = "http://localhost:8080/api"

// Client wraps the Admin API. All endpoint wrappers in this package go
// through Call, which owns auth, serialization, and error extraction.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new Admin API client.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken replaces the bearer token. An empty token sends no
// Authorization header.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently held bearer token.
func (c *Client) Token() string {
	return c.token
}

// RequestError is the uniform failure for non-2xx API responses. Only the
// extracted message is retained; callers branch on nothing else.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// errorEnvelope mirrors the two message shapes the Admin API emits.
type errorEnvelope struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

const fallbackErrorMessage = "Request failed."

// Call issues one request against the Admin API. body, if non-nil, is
// JSON-marshaled. A 204 returns nil without parsing; an empty body parses
// as an empty object. Non-2xx responses become a *RequestError whose
// message comes from error.message, then message, then a fixed fallback.
func (c *Client) Call(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	raw := json.RawMessage(`{}`)
	if len(bytes.TrimSpace(text)) > 0 {
		raw = json.RawMessage(text)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope errorEnvelope
		_ = json.Unmarshal(raw, &envelope)
		message := fallbackErrorMessage
		if envelope.Error != nil && envelope.Error.Message != "" {
			message = envelope.Error.Message
		} else if envelope.Message != "" {
			message = envelope.Message
		}
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: message}
	}

	return raw, nil
}
