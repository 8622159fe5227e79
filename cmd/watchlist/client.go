package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client wraps HTTP calls to the watchlist server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new watchlist API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// apiError is the error envelope of the JSON API.
type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func readError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var e apiError
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return fmt.Errorf("server error %d (%s): %s", resp.StatusCode, e.Code, e.Error)
	}
	return fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return readError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return readError(resp)
	}
	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) delete(path string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return readError(resp)
	}
	return nil
}

// Response types

type StatusResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Entries  int    `json:"entries"`
	Provider string `json:"provider,omitempty"`
}

type CardResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Condition string `json:"condition"`
	Country   string `json:"country"`
	Visible   bool   `json:"visible"`
}

type CardsResponse struct {
	Tab       string         `json:"tab"`
	Query     string         `json:"query"`
	Condition string         `json:"condition"`
	Cards     []CardResponse `json:"cards"`
	Visible   int            `json:"visible"`
}

type EntryResponse struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Year      string    `json:"year"`
	Country   string    `json:"country"`
	Type      string    `json:"type"`
	PosterURL string    `json:"poster_url"`
	Ep        string    `json:"ep,omitempty"`
	Condition string    `json:"condition,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

type AddEntryRequest struct {
	Category  string `json:"category"`
	Name      string `json:"name"`
	Year      string `json:"year,omitempty"`
	Country   string `json:"country,omitempty"`
	Type      string `json:"type,omitempty"`
	PosterURL string `json:"poster_url,omitempty"`
	Ep        string `json:"ep,omitempty"`
	Condition string `json:"condition,omitempty"`
}

type LocalMediaItem struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Size    string `json:"size"`
	Episode string `json:"episode,omitempty"`
}

type LocalMediaResponse struct {
	Results []LocalMediaItem `json:"results"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Cards returns the cards of tab with the server-side filter applied.
func (c *Client) Cards(tab, query, condition string) (*CardsResponse, error) {
	params := url.Values{}
	if tab != "" {
		params.Set("tab", tab)
	}
	if query != "" {
		params.Set("q", query)
	}
	if condition != "" {
		params.Set("condition", condition)
	}
	path := "/api/v1/cards"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp CardsResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AddEntry(req AddEntryRequest) (*EntryResponse, error) {
	var resp EntryResponse
	if err := c.post("/api/v1/entries", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteEntry(id int64) error {
	return c.delete("/api/v1/entries/" + strconv.FormatInt(id, 10))
}

func (c *Client) LocalMedia(name, kind string) (*LocalMediaResponse, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("type", kind)

	var resp LocalMediaResponse
	if err := c.get("/api/v1/local_media?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
