// Package client calls the lingua REST API. Each method issues exactly one
// request; there is no retry, caching or deduplication.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is returned for any non-2xx response. Body is the backend payload
// exactly as received.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// Message extracts a human-readable message from the payload: a bare JSON
// string, or the status/message/error field of an object.
func (e *APIError) Message() string {
	var s string
	if json.Unmarshal(e.Body, &s) == nil {
		return s
	}
	var obj map[string]any
	if json.Unmarshal(e.Body, &obj) == nil {
		for _, key := range []string{"status", "message", "error"} {
			if v, ok := obj[key].(string); ok && v != "" {
				return v
			}
		}
	}
	return strings.TrimSpace(string(e.Body))
}

type APIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithToken sends token as a bearer credential on every request.
func (c *APIClient) WithToken(token string) *APIClient {
	c.token = token
	return c
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: data}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// StatusResponse is the {status} body of delete routes.
type StatusResponse struct {
	Status string `json:"status"`
}

// ClearResponse is the body of the clear routes.
type ClearResponse struct {
	Status       string `json:"status"`
	DeletedCount int64  `json:"deletedCount"`
}

// getEnvelope fetches a {status, <key>: doc} response and returns the doc.
func getEnvelope[T any](ctx context.Context, c *APIClient, method, path, key string, body any) (*T, error) {
	var envelope map[string]json.RawMessage
	if err := c.do(ctx, method, path, body, &envelope); err != nil {
		return nil, err
	}
	raw, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("%s %s: response has no %q field", method, path, key)
	}
	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return &doc, nil
}

func escape(id string) string {
	return url.PathEscape(id)
}
