package tmdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/vmunix/watchlist/pkg/title"
)

const posterSize = "w500"

// Query identifies a title to resolve.
type Query struct {
	Name    string
	Type    string // free-form media type, see ParseKind
	Year    string
	Country string
}

// searchWithFallback searches with year and region, retrying with the bare
// name when nothing comes back.
func (c *Client) searchWithFallback(ctx context.Context, kind Kind, q Query) ([]Result, error) {
	opts := SearchOptions{Year: q.Year, Region: strings.ToUpper(q.Country)}
	results, err := c.Search(ctx, kind, q.Name, opts)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 && opts != (SearchOptions{}) {
		results, err = c.Search(ctx, kind, q.Name, SearchOptions{})
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// PickResult chooses the result that best matches name: an exact match
// ignoring case and punctuation, then the first title containing name, then
// the best fuzzy match, then the first result. Returns -1 for no results.
func PickResult(name string, results []Result) int {
	if len(results) == 0 {
		return -1
	}

	want := title.StripPunct(name)
	for i := range results {
		if title.StripPunct(results[i].DisplayTitle()) == want {
			return i
		}
	}

	lower := strings.ToLower(name)
	for i := range results {
		if strings.Contains(strings.ToLower(results[i].DisplayTitle()), lower) {
			return i
		}
	}

	titles := make([]string, len(results))
	for i := range results {
		titles[i] = results[i].DisplayTitle()
	}
	if m := title.Best(name, titles); m.Confidence >= title.ConfidenceLow {
		return m.Index
	}
	return 0
}

// FindTrailer returns the YouTube embed URL of the first trailer of the best
// matching title. Returns ErrNotFound when there is no match or no trailer.
func (c *Client) FindTrailer(ctx context.Context, q Query) (string, error) {
	kind, err := ParseKind(q.Type)
	if err != nil {
		return "", err
	}

	results, err := c.searchWithFallback(ctx, kind, q)
	if err != nil {
		return "", err
	}
	i := PickResult(q.Name, results)
	if i < 0 {
		return "", fmt.Errorf("trailer for %q: %w", q.Name, ErrNotFound)
	}

	videos, err := c.Videos(ctx, kind, results[i].ID)
	if err != nil {
		return "", err
	}
	for _, v := range videos {
		if v.Type == "Trailer" && v.Site == "YouTube" {
			return v.EmbedURL(), nil
		}
	}
	return "", fmt.Errorf("trailer for %q: %w", q.Name, ErrNotFound)
}

// FindPoster returns a w500 poster URL, preferring a result whose title and
// year both match, else the first result's poster.
func (c *Client) FindPoster(ctx context.Context, q Query) (string, error) {
	kind, err := ParseKind(q.Type)
	if err != nil {
		return "", err
	}

	results, err := c.Search(ctx, kind, q.Name, SearchOptions{Year: q.Year, Region: strings.ToUpper(q.Country)})
	if err != nil {
		return "", err
	}

	for i := range results {
		r := &results[i]
		if !strings.EqualFold(r.DisplayTitle(), q.Name) {
			continue
		}
		if q.Year != "" && r.Year() != q.Year {
			continue
		}
		if u := r.PosterURL(posterSize); u != "" {
			return u, nil
		}
	}
	if len(results) > 0 {
		if u := results[0].PosterURL(posterSize); u != "" {
			return u, nil
		}
	}
	return "", fmt.Errorf("poster for %q: %w", q.Name, ErrNotFound)
}
