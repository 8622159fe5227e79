package library

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyList = `{
    "series": [
        {"name": "Dark", "year": "2017", "country": "de", "type": "series", "poster_url": "http://p/dark.jpg", "ep": "3", "condition": "watching"}
    ],
    "movies": [
        {"name": "Amélie", "year": 2001, "country": "fr", "type": "movie", "poster_url": ""},
        {"name": "Heat", "year": null, "country": "us", "type": "movie", "poster_url": ""}
    ]
}`

func TestStore_ImportJSON(t *testing.T) {
	store := NewStore(setupTestDB(t))

	n, err := store.ImportJSON(strings.NewReader(legacyList))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	entries, total, err := store.ListEntries(EntryFilter{})
	require.NoError(t, err)
	require.Equal(t, 3, total)

	assert.Equal(t, CategorySeries, entries[0].Category)
	assert.Equal(t, "watching", entries[0].Condition)
	assert.Equal(t, "Amélie", entries[1].Name)
	assert.Equal(t, "2001", entries[1].Year)
	assert.Equal(t, "", entries[2].Year)
}

func TestStore_ImportJSON_Invalid(t *testing.T) {
	store := NewStore(setupTestDB(t))

	_, err := store.ImportJSON(strings.NewReader(`{"series": [`))
	assert.Error(t, err)

	_, total, err := store.ListEntries(EntryFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestStore_ExportJSON_RoundTrip(t *testing.T) {
	store := NewStore(setupTestDB(t))
	_, err := store.ImportJSON(strings.NewReader(legacyList))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, store.ExportJSON(&buf))

	// non-ASCII names are written as-is
	assert.Contains(t, buf.String(), "Amélie")

	var doc struct {
		Series []map[string]string `json:"series"`
		Movies []map[string]string `json:"movies"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Series, 1)
	require.Len(t, doc.Movies, 2)
	assert.Equal(t, "3", doc.Series[0]["ep"])
	_, hasEp := doc.Movies[0]["ep"]
	assert.False(t, hasEp, "movies carry no ep field")
}

func TestStore_ExportJSON_Empty(t *testing.T) {
	store := NewStore(setupTestDB(t))

	var buf bytes.Buffer
	require.NoError(t, store.ExportJSON(&buf))
	assert.JSONEq(t, `{"series": [], "movies": []}`, buf.String())
}
