// Package trailer looks up trailers for cards and drives the trailer modal.
package trailer

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/vmunix/watchlist/internal/cards"
)

// trailingYear matches a "(YYYY)" suffix on a card title.
var trailingYear = regexp.MustCompile(`\((\d{4})\)$`)

// ParseTitle splits a "<name> (<year>)" card title. The year is empty when
// the title does not end with a four-digit year in parentheses.
func ParseTitle(text string) (name, year string) {
	text = strings.TrimSpace(text)
	m := trailingYear.FindStringSubmatch(text)
	if m == nil {
		return text, ""
	}
	return strings.TrimSpace(strings.TrimSuffix(text, m[0])), m[1]
}

// Request is the query sent to the trailer endpoint.
type Request struct {
	Name    string
	Type    string
	Year    string
	Country string
}

// NewRequest builds the lookup request for a card.
func NewRequest(c cards.Card) Request {
	name, year := ParseTitle(c.Title)
	return Request{
		Name:    name,
		Type:    MapType(c.Type),
		Year:    year,
		Country: c.Country,
	}
}

// MapType converts a card type to the type the endpoint expects.
func MapType(t string) string {
	if t == "series" {
		return "tv"
	}
	return t
}

// formEscaper adjusts url.QueryEscape output to the browser's form encoding,
// which keeps '*' and escapes '~'.
var formEscaper = strings.NewReplacer("%2A", "*", "~", "%7E")

// Encode renders the request as a query string with a fixed parameter order:
// name, type, then year and country when present.
func (r Request) Encode() string {
	var b strings.Builder
	add := func(key, value string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(formEscaper.Replace(url.QueryEscape(key)))
		b.WriteByte('=')
		b.WriteString(formEscaper.Replace(url.QueryEscape(value)))
	}
	add("name", r.Name)
	add("type", r.Type)
	if r.Year != "" {
		add("year", r.Year)
	}
	if r.Country != "" {
		add("country", r.Country)
	}
	return b.String()
}
