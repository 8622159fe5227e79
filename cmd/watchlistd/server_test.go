package main

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/vmunix/watchlist/internal/config"
	"github.com/vmunix/watchlist/internal/migrations"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}

func TestOpenDB_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "watchlist.db")
	db, err := openDB(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n))
	assert.Zero(t, n)
}

func TestBuildHandler(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)
	require.NoError(t, migrations.Apply(db))

	cfg := &config.Config{
		Metadata: config.MetadataConfig{
			Provider:      config.ProviderCustom,
			PosterAPIURL:  "http://posters.invalid",
			TrailerAPIURL: "http://trailers.invalid",
		},
		Posters:  config.PostersConfig{CacheDir: t.TempDir(), MaxAge: 24 * time.Hour},
	}
	handler, jobs, err := buildHandler(cfg, "", db, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "poster-prune", jobs[0].Name)

	srv := httptest.NewServer(handler)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/entries", "application/json",
		strings.NewReader(`{"category":"series","name":"Dark","year":"2017","type":"series"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/trailer?name=Dark&type=tv&year=2017")
	require.NoError(t, err)
	var trailer struct {
		TrailerURL *string `json:"trailer_url"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&trailer))
	_ = resp.Body.Close()
	assert.Nil(t, trailer.TrailerURL, "custom trailer URL has no trailers")

	resp, err = http.Get(srv.URL + "/?tab=series&q=dark")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
