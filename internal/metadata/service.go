// Package metadata resolves posters and trailers through the configured
// metadata provider.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vmunix/watchlist/internal/omdb"
	"github.com/vmunix/watchlist/internal/tmdb"
)

// Providers.
const (
	ProviderTMDB   = "tmdb"
	ProviderOMDB   = "omdb"
	ProviderCustom = "custom"
)

// ErrNotFound is returned when the provider has nothing for the query.
var ErrNotFound = errors.New("not found")

// Query identifies a movie or show.
type Query struct {
	Name    string
	Type    string
	Year    string
	Country string
}

// Settings select and authenticate the provider. They can be changed at
// runtime from the settings page.
type Settings struct {
	Provider      string `json:"api_provider"`
	APIKey        string `json:"api_key"`
	PosterAPIURL  string `json:"poster_api_url"`
	TrailerAPIURL string `json:"trailer_api_url"`
}

// Service looks up posters and trailers.
type Service struct {
	mu       sync.RWMutex
	settings Settings
	tmdb     *tmdb.Client
	omdb     *omdb.Client

	tmdbOpts []tmdb.Option
	omdbOpts []omdb.Option
	log      *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTMDBOptions passes options to every TMDB client the service builds.
func WithTMDBOptions(opts ...tmdb.Option) Option {
	return func(s *Service) {
		s.tmdbOpts = append(s.tmdbOpts, opts...)
	}
}

// WithOMDBOptions passes options to every OMDb client the service builds.
func WithOMDBOptions(opts ...omdb.Option) Option {
	return func(s *Service) {
		s.omdbOpts = append(s.omdbOpts, opts...)
	}
}

// NewService creates a service for the given settings.
func NewService(settings Settings, log *slog.Logger, opts ...Option) *Service {
	s := &Service{log: log}
	for _, opt := range opts {
		opt(s)
	}
	s.apply(settings)
	return s
}

func (s *Service) apply(settings Settings) {
	if settings.Provider == "" {
		settings.Provider = ProviderTMDB
	}
	s.settings = settings
	s.tmdb = tmdb.NewClient(settings.APIKey, s.tmdbOpts...)
	s.omdb = omdb.NewClient(settings.APIKey, s.omdbOpts...)
}

// Settings returns the active settings.
func (s *Service) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update swaps the provider settings. Clients are rebuilt so the response
// cache never serves results fetched with another key.
func (s *Service) Update(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(settings)
	if s.log != nil {
		s.log.Info("metadata provider updated", "provider", s.settings.Provider)
	}
}

func (s *Service) snapshot() (Settings, *tmdb.Client, *omdb.Client) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, s.tmdb, s.omdb
}

// Poster returns a poster URL for q.
func (s *Service) Poster(ctx context.Context, q Query) (string, error) {
	settings, tc, oc := s.snapshot()

	var (
		url string
		err error
	)
	switch {
	case settings.Provider == ProviderCustom && settings.PosterAPIURL != "":
		return "", fmt.Errorf("poster for %q: %w", q.Name, ErrNotFound)
	case settings.Provider == ProviderOMDB:
		url, err = oc.FindPoster(ctx, q.Name, q.Type, q.Year)
	default:
		url, err = tc.FindPoster(ctx, tmdb.Query(q))
	}
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) || errors.Is(err, omdb.ErrNotFound) || errors.Is(err, tmdb.ErrUnknownKind) {
			if s.log != nil {
				s.log.Warn("poster not found", "name", q.Name, "provider", settings.Provider)
			}
			return "", fmt.Errorf("poster for %q: %w", q.Name, ErrNotFound)
		}
		return "", fmt.Errorf("poster for %q: %w", q.Name, err)
	}
	return url, nil
}

// Trailer returns a YouTube embed URL for q. OMDb has no trailers, so the
// omdb provider still resolves trailers through TMDB with the same key.
// A custom provider without a trailer URL falls back to TMDB as well.
func (s *Service) Trailer(ctx context.Context, q Query) (string, error) {
	settings, tc, _ := s.snapshot()

	if settings.Provider == ProviderCustom && settings.TrailerAPIURL != "" {
		return "", fmt.Errorf("trailer for %q: %w", q.Name, ErrNotFound)
	}

	url, err := tc.FindTrailer(ctx, tmdb.Query(q))
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) || errors.Is(err, tmdb.ErrUnknownKind) {
			return "", fmt.Errorf("trailer for %q: %w", q.Name, ErrNotFound)
		}
		return "", fmt.Errorf("trailer for %q: %w", q.Name, err)
	}
	return url, nil
}
