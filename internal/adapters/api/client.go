// Package api is the HTTP client for the external academic-events API. It
// owns transport concerns only: request building, bearer auth, status
// mapping and per-call metrics. Business rules stay in the domain packages.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/escolarhq/eventos-admin/pkg/metrics"
)

// defaultTimeout bounds each request when no option overrides it.
const defaultTimeout = 30 * time.Second

// Client talks to the external academic-events API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithToken sets the session bearer token. An empty token leaves requests
// unauthenticated; the server is trusted to reject them if it must.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one request against endpoint, encoding body when non-nil and
// decoding the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out interface{}) error {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: marshal body: %w", ErrRequest, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RecordAPIRequestDuration(endpoint, method, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordAPIError(endpoint)
		return fmt.Errorf("%w: %s %s: %w", ErrRequest, method, endpoint, err)
	}
	defer resp.Body.Close()

	metrics.RecordAPIRequest(endpoint, method, strconv.Itoa(resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.RecordAPIError(endpoint)
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, endpoint)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		metrics.RecordAPIError(endpoint)
		return fmt.Errorf("%w: %s %s returned %d", ErrStatus, method, endpoint, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
