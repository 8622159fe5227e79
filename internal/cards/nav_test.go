package cards

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveTab(t *testing.T) {
	tabs := []string{"series", "movies"}

	assert.Equal(t, "movies", ActiveTab(url.Values{"tab": {"movies"}}, tabs, "series"))
	assert.Equal(t, "series", ActiveTab(url.Values{}, tabs, "series"))
	assert.Equal(t, "series", ActiveTab(url.Values{"tab": {"music"}}, tabs, "series"))
}

func TestTabURL_PreservesOtherParams(t *testing.T) {
	u, err := url.Parse("http://localhost:8080/?q=bad&tab=series")
	require.NoError(t, err)

	got, err := url.Parse(TabURL(u, "movies"))
	require.NoError(t, err)
	assert.Equal(t, "movies", got.Query().Get("tab"))
	assert.Equal(t, "bad", got.Query().Get("q"))
	assert.Equal(t, "series", u.Query().Get("tab"), "input URL is not modified")
}
