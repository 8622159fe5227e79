package metadata

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/watchlist/internal/omdb"
	"github.com/vmunix/watchlist/internal/tmdb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, settings Settings) (*Service, *[]string) {
	t.Helper()
	var hits []string

	tmdbServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "tmdb "+r.URL.Path)
		switch {
		case strings.HasPrefix(r.URL.Path, "/3/search/"):
			if r.URL.Query().Get("query") == "Unknown" {
				_, _ = w.Write([]byte(`{"results":[]}`))
				return
			}
			_, _ = w.Write([]byte(`{"results":[{"id":27205,"title":"Inception","release_date":"2010-07-15","poster_path":"/inc.jpg"}]}`))
		case strings.HasSuffix(r.URL.Path, "/videos"):
			_, _ = w.Write([]byte(`{"results":[{"key":"YoHD9XEInc0","site":"YouTube","type":"Trailer"}]}`))
		}
	}))
	t.Cleanup(tmdbServer.Close)

	omdbServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "omdb "+r.URL.Query().Get("t"))
		_, _ = w.Write([]byte(`{"Title":"Inception","Poster":"https://omdb/inc.jpg","Response":"True"}`))
	}))
	t.Cleanup(omdbServer.Close)

	svc := NewService(settings, testLogger(),
		WithTMDBOptions(tmdb.WithBaseURL(tmdbServer.URL), tmdb.WithCacheTTL(0), tmdb.WithRateLimit(0)),
		WithOMDBOptions(omdb.WithBaseURL(omdbServer.URL+"/")),
	)
	return svc, &hits
}

func TestService_DefaultsToTMDB(t *testing.T) {
	svc, _ := newTestService(t, Settings{APIKey: "k"})
	assert.Equal(t, ProviderTMDB, svc.Settings().Provider)
}

func TestService_Poster(t *testing.T) {
	ctx := context.Background()
	q := Query{Name: "Inception", Type: "movie", Year: "2010"}

	t.Run("tmdb", func(t *testing.T) {
		svc, _ := newTestService(t, Settings{Provider: ProviderTMDB, APIKey: "k"})
		got, err := svc.Poster(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, "https://image.tmdb.org/t/p/w500/inc.jpg", got)
	})

	t.Run("omdb", func(t *testing.T) {
		svc, hits := newTestService(t, Settings{Provider: ProviderOMDB, APIKey: "k"})
		got, err := svc.Poster(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, "https://omdb/inc.jpg", got)
		assert.Equal(t, []string{"omdb Inception"}, *hits)
	})

	t.Run("custom", func(t *testing.T) {
		svc, hits := newTestService(t, Settings{Provider: ProviderCustom, PosterAPIURL: "http://example.invalid"})
		_, err := svc.Poster(ctx, q)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, *hits)
	})

	t.Run("custom without poster url uses tmdb", func(t *testing.T) {
		svc, hits := newTestService(t, Settings{Provider: ProviderCustom, APIKey: "k", TrailerAPIURL: "http://example.invalid"})
		got, err := svc.Poster(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, "https://image.tmdb.org/t/p/w500/inc.jpg", got)
		assert.Contains(t, *hits, "tmdb /3/search/movie")
	})

	t.Run("not found", func(t *testing.T) {
		svc, _ := newTestService(t, Settings{APIKey: "k"})
		_, err := svc.Poster(ctx, Query{Name: "Unknown", Type: "movie"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Trailer(t *testing.T) {
	ctx := context.Background()
	q := Query{Name: "Inception", Type: "movie"}

	svc, _ := newTestService(t, Settings{APIKey: "k"})
	got, err := svc.Trailer(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/YoHD9XEInc0", got)

	svc.Update(Settings{Provider: ProviderCustom, TrailerAPIURL: "http://example.invalid"})
	_, err = svc.Trailer(ctx, q)
	assert.ErrorIs(t, err, ErrNotFound)

	svc.Update(Settings{Provider: ProviderOMDB, APIKey: "k"})
	got, err = svc.Trailer(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/YoHD9XEInc0", got)
}

func TestService_Trailer_UnknownKind(t *testing.T) {
	svc, hits := newTestService(t, Settings{APIKey: "k"})
	_, err := svc.Trailer(context.Background(), Query{Name: "X", Type: "podcast"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, *hits)
}

func TestService_Trailer_CustomWithoutURL(t *testing.T) {
	svc, hits := newTestService(t, Settings{Provider: ProviderCustom, APIKey: "k"})

	got, err := svc.Trailer(context.Background(), Query{Name: "Inception", Type: "movie", Year: "2010"})
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/YoHD9XEInc0", got)
	assert.NotEmpty(t, *hits)

	got, err = svc.Poster(context.Background(), Query{Name: "Inception", Type: "movie", Year: "2010"})
	require.NoError(t, err)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/inc.jpg", got)
}
