package trailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned when the endpoint has no trailer for a request.
var ErrNotFound = errors.New("trailer not found")

// Response is the JSON body returned by the trailer endpoint.
type Response struct {
	TrailerURL *string `json:"trailer_url"`
}

// Client calls the /trailer endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint URL for a request.
func (c *Client) URL(req Request) string {
	return c.baseURL + "/trailer?" + req.Encode()
}

// Lookup resolves the trailer URL for a request.
// Returns ErrNotFound when the response has no trailer_url.
func (c *Client) Lookup(ctx context.Context, req Request) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(req), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("trailer endpoint: %s", resp.Status)
	}

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if body.TrailerURL == nil || *body.TrailerURL == "" {
		return "", ErrNotFound
	}
	return *body.TrailerURL, nil
}
