package cards

import (
	"net/url"
	"slices"
)

// TabParam is the URL query parameter that selects the active tab.
const TabParam = "tab"

// ActiveTab reads the tab parameter, falling back to def when it is missing
// or names a tab that does not exist.
func ActiveTab(values url.Values, tabs []string, def string) string {
	t := values.Get(TabParam)
	if t == "" || !slices.Contains(tabs, t) {
		return def
	}
	return t
}

// TabURL returns current with its tab parameter replaced. Other parameters
// are preserved so the query survives the navigation.
func TabURL(current *url.URL, tab string) string {
	u := *current
	q := u.Query()
	q.Set(TabParam, tab)
	u.RawQuery = q.Encode()
	return u.String()
}
