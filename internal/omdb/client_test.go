package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FindPoster(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "key", q.Get("apikey"))
		assert.Equal(t, "Dark", q.Get("t"))
		assert.Equal(t, "series", q.Get("type"))
		assert.Equal(t, "2017", q.Get("y"))
		_, _ = w.Write([]byte(`{"Title":"Dark","Year":"2017–2020","Type":"series","Poster":"https://m.media-amazon.com/dark.jpg","Response":"True"}`))
	}))
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL+"/"))

	got, err := client.FindPoster(context.Background(), "Dark", "tv", "2017")
	require.NoError(t, err)
	assert.Equal(t, "https://m.media-amazon.com/dark.jpg", got)
}

func TestClient_FindPoster_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("t") {
		case "NoPoster":
			_, _ = w.Write([]byte(`{"Title":"NoPoster","Poster":"N/A","Response":"True"}`))
		default:
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
		}
	}))
	defer server.Close()

	client := NewClient("key", WithBaseURL(server.URL+"/"))

	_, err := client.FindPoster(context.Background(), "Missing", "movie", "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.FindPoster(context.Background(), "NoPoster", "movie", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_GetTitle_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("bad", WithBaseURL(server.URL+"/"))

	_, err := client.GetTitle(context.Background(), "Heat", "movie", "")
	assert.ErrorContains(t, err, "401")
}

func TestSearchType(t *testing.T) {
	assert.Equal(t, "movie", searchType("Movie"))
	assert.Equal(t, "series", searchType("tv"))
	assert.Equal(t, "series", searchType("series"))
}
