// Package tmdb provides a client for The Movie Database API.
package tmdb

import (
	"fmt"
	"strings"
)

// Kind is a TMDB search namespace.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// ParseKind maps a free-form media type ("Movie", "tv show", "series") to a
// search kind using its first word.
func ParseKind(mediaType string) (Kind, error) {
	fields := strings.Fields(strings.ToLower(mediaType))
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty", ErrUnknownKind)
	}
	switch fields[0] {
	case "movie":
		return KindMovie, nil
	case "tv", "series":
		return KindTV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, mediaType)
}

// Result is one item of a /search response.
type Result struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`          // movies
	Name         string `json:"name"`           // tv
	ReleaseDate  string `json:"release_date"`   // "2010-07-15"
	FirstAirDate string `json:"first_air_date"` // "2008-01-20"
	PosterPath   string `json:"poster_path"`
}

// DisplayTitle returns the title or name, whichever the kind uses.
func (r *Result) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Year returns the first four characters of the release or air date.
func (r *Result) Year() string {
	date := r.ReleaseDate
	if date == "" {
		date = r.FirstAirDate
	}
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// PosterURL returns the full poster image URL.
// Size can be: w92, w154, w185, w342, w500, w780, original
func (r *Result) PosterURL(size string) string {
	if r.PosterPath == "" {
		return ""
	}
	return "https://image.tmdb.org/t/p/" + size + r.PosterPath
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Video is one item of a /{kind}/{id}/videos response.
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"` // "YouTube"
	Type string `json:"type"` // "Trailer", "Teaser", ...
	Name string `json:"name"`
}

// EmbedURL returns the YouTube embed URL for the video.
func (v *Video) EmbedURL() string {
	return "https://www.youtube.com/embed/" + v.Key
}

type videosResponse struct {
	Results []Video `json:"results"`
}

// SearchOptions narrows a search.
type SearchOptions struct {
	Year   string
	Region string
}
