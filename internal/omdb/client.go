// Package omdb provides a minimal client for the OMDb title lookup API.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "http://www.omdbapi.com/"

// ErrNotFound is returned when OMDb has no poster for the title.
var ErrNotFound = errors.New("not found")

// Title is the subset of an OMDb title response the list uses.
type Title struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Type     string `json:"Type"`
	Poster   string `json:"Poster"`
	Response string `json:"Response"` // "True" or "False"
	Error    string `json:"Error"`
}

// Client is an OMDb API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new OMDb client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchType maps a media type to OMDb's type filter: "movie" stays movie,
// everything else is looked up as a series.
func searchType(mediaType string) string {
	if strings.EqualFold(strings.TrimSpace(mediaType), "movie") {
		return "movie"
	}
	return "series"
}

// GetTitle looks a title up by exact name.
func (c *Client) GetTitle(ctx context.Context, name, mediaType, year string) (*Title, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("t", name)
	params.Set("type", searchType(mediaType))
	if year != "" {
		params.Set("y", year)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OMDb API error: %s", resp.Status)
	}

	var t Title
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if t.Response == "False" {
		return nil, fmt.Errorf("title %q: %w (%s)", name, ErrNotFound, t.Error)
	}
	return &t, nil
}

// FindPoster returns the poster URL of the title.
func (c *Client) FindPoster(ctx context.Context, name, mediaType, year string) (string, error) {
	t, err := c.GetTitle(ctx, name, mediaType, year)
	if err != nil {
		return "", err
	}
	if t.Poster == "" || t.Poster == "N/A" {
		return "", fmt.Errorf("poster for %q: %w", name, ErrNotFound)
	}
	return t.Poster, nil
}
