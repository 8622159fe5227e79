package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"3", 3, false},
		{"series-3", 3, false},
		{"movies-12", 12, false},
		{"abc", 0, true},
		{"0", 0, true},
		{"series-", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseEntryID(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList_PrintsVisibleCards(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/cards").
		ExpectMethod(http.MethodGet).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "movies", r.URL.Query().Get("tab"))
			assert.Equal(t, "dark", r.URL.Query().Get("q"))
			respondJSON(t, w, CardsResponse{
				Tab:       "movies",
				Query:     "dark",
				Condition: "all",
				Visible:   1,
				Cards: []CardResponse{
					{ID: "movies-1", Title: "The Dark Knight (2008)", Type: "movie", Visible: true},
					{ID: "movies-2", Title: "Heat (1995)", Type: "movie"},
				},
			})
		}).
		Build()

	out, err := execute(t, "--server", srv.URL, "list", "--tab", "movies", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "movies (1 of 2)")
	assert.Contains(t, out, "The Dark Knight (2008)")
	assert.NotContains(t, out, "Heat (1995)")

	out, err = execute(t, "--server", srv.URL, "list", "--tab", "movies", "--all", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "- movies-2")
}

func TestList_NoMatches(t *testing.T) {
	srv := newMockServer(t).
		RespondJSON(CardsResponse{Tab: "series", Cards: []CardResponse{{ID: "series-1"}}}).
		Build()

	out, err := execute(t, "--server", srv.URL, "list", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "No series match\n", out)
}

func TestAdd(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/entries").
		ExpectMethod(http.MethodPost).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var req AddEntryRequest
			assert.NoError(t, decodeBody(r, &req))
			assert.Equal(t, AddEntryRequest{Category: "movies", Name: "Heat", Year: "1995"}, req)
			w.WriteHeader(http.StatusCreated)
			respondJSON(t, w, EntryResponse{ID: 7, Category: "movies", Name: "Heat", Year: "1995"})
		}).
		Build()

	out, err := execute(t, "--server", srv.URL, "add", "Heat", "--category", "movies", "--year", "1995")
	require.NoError(t, err)
	assert.Contains(t, out, "Added movies-7: Heat")
	assert.Contains(t, out, "no poster found")
}

func TestAdd_ServerError(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusBadRequest, "INVALID_CATEGORY", "category must be series or movies").
		Build()

	_, err := execute(t, "--server", srv.URL, "add", "Dune", "--category", "books")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_CATEGORY")
}

func TestDelete(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/entries/3").
		ExpectMethod(http.MethodDelete).
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}).
		Build()

	out, err := execute(t, "--server", srv.URL, "delete", "series-3")
	require.NoError(t, err)
	assert.Equal(t, "Deleted entry 3\n", out)
}

func TestStatus_JSON(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/status").
		RespondJSON(StatusResponse{Status: "ok", Version: "1.0", Entries: 4, Provider: "tmdb"}).
		Build()

	out, err := execute(t, "--server", srv.URL, "--json", "status")
	require.NoError(t, err)
	assert.Contains(t, out, `"entries": 4`)
}

func TestTrailer(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/trailer").
		Handler(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("name") == "Breaking Bad" {
				assert.Equal(t, "tv", q.Get("type"))
				assert.Equal(t, "2008", q.Get("year"))
				assert.Equal(t, "us", q.Get("country"))
				_, _ = w.Write([]byte(`{"trailer_url":"https://www.youtube.com/embed/abc"}`))
				return
			}
			_, _ = w.Write([]byte(`{"trailer_url":null}`))
		}).
		Build()

	out, err := execute(t, "--server", srv.URL, "trailer", "Breaking Bad (2008)", "--type", "series", "--country", "us")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/abc\n", out)

	out, err = execute(t, "--server", srv.URL, "trailer", "Unknown Film")
	require.NoError(t, err)
	assert.Equal(t, "Trailer not found!\n", out)
}

func TestTrailer_ServerFailure(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}).
		Build()

	_, err := execute(t, "--server", srv.URL, "trailer", "Heat (1995)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not load trailer. Please try again.")
}

func TestLocal_NoMediaPath(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/local_media").
		RespondError(http.StatusConflict, "NO_MEDIA_PATH", "Local media path not set or does not exist").
		Build()

	_, err := execute(t, "--server", srv.URL, "local", "Heat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NO_MEDIA_PATH")
}

func TestInitConfigImportExport(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	t.Setenv("TMDB_API_KEY", "")

	out, err := execute(t, "init", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+cfgPath)

	_, err = execute(t, "init", cfgPath)
	assert.Error(t, err, "existing config is not overwritten")

	// Point the database into the temp dir.
	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	data = []byte(strings.Replace(string(data), `path = "./data/watchlist.db"`, `path = "`+filepath.Join(dir, "watchlist.db")+`"`, 1))
	require.NoError(t, os.WriteFile(cfgPath, data, 0o644))

	out, err = execute(t, "config", "test", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid!")

	list := filepath.Join(dir, "my_list.json")
	require.NoError(t, os.WriteFile(list, []byte(`{
		"series": [{"name": "Dark", "year": 2017, "type": "series", "ep": "4", "condition": "watching"}],
		"movies": [{"name": "Heat", "year": "1995", "type": "movie"}]
	}`), 0o644))

	out, err = execute(t, "--config", cfgPath, "import", list)
	require.NoError(t, err)
	assert.Equal(t, "Imported 2 entries\n", out)

	out, err = execute(t, "--config", cfgPath, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Dark"`)
	assert.Contains(t, out, `"name": "Heat"`)
}

func TestConfigTest_Invalid(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[server]\nlog_level = \"loud\"\n"), 0o644))

	out, err := execute(t, "config", "test", cfgPath)
	require.Error(t, err)
	assert.Contains(t, out, "server.log_level")
}
