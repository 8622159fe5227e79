package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL        = "https://api.themoviedb.org"
	defaultCacheTTL       = 24 * time.Hour
	defaultRequestsPerSec = 20
)

var (
	// ErrNotFound is returned when TMDB has nothing for the request.
	ErrNotFound = errors.New("not found")

	// ErrUnknownKind is returned for media types that map to no search kind.
	ErrUnknownKind = errors.New("unknown media kind")
)

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithCacheTTL sets how long responses are cached. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl <= 0 {
			c.cache = nil
			return
		}
		c.cache = cache.New(ttl, 2*ttl)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit caps outgoing requests per second. Zero disables the limit.
func WithRateLimit(perSec float64) Option {
	return func(c *Client) {
		if perSec <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSec), 1)
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache:   cache.New(defaultCacheTTL, 2*defaultCacheTTL),
		limiter: rate.NewLimiter(defaultRequestsPerSec, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get fetches path with params and decodes the JSON body into out.
// Successful bodies are cached by path and query.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	key := path + "?" + params.Encode()
	if c.cache != nil {
		if body, ok := c.cache.Get(key); ok {
			return decode(body.([]byte), out)
		}
	}

	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := decode(body, out); err != nil {
		return err
	}

	if c.cache != nil {
		c.cache.Set(key, body, cache.DefaultExpiration)
	}
	return nil
}

func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Search queries /3/search/{kind}. A year is sent as year for movies and
// first_air_date_year for tv.
func (c *Client) Search(ctx context.Context, kind Kind, query string, opts SearchOptions) ([]Result, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	if opts.Year != "" {
		switch kind {
		case KindMovie:
			params.Set("year", opts.Year)
		case KindTV:
			params.Set("first_air_date_year", opts.Year)
		}
	}
	if opts.Region != "" {
		params.Set("region", opts.Region)
	}

	var resp searchResponse
	if err := c.get(ctx, "/3/search/"+string(kind), params, &resp); err != nil {
		return nil, fmt.Errorf("search %s %q: %w", kind, query, err)
	}
	return resp.Results, nil
}

// Videos lists the videos attached to a movie or show.
func (c *Client) Videos(ctx context.Context, kind Kind, id int64) ([]Video, error) {
	var resp videosResponse
	if err := c.get(ctx, fmt.Sprintf("/3/%s/%d/videos", kind, id), url.Values{}, &resp); err != nil {
		return nil, fmt.Errorf("videos %s %d: %w", kind, id, err)
	}
	return resp.Results, nil
}
