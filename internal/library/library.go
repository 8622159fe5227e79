// Package library stores the movie and series entries of the list.
package library

import (
	"fmt"
	"time"

	"github.com/vmunix/watchlist/internal/cards"
)

// Category is the tab an entry belongs to.
type Category string

const (
	CategorySeries Category = "series"
	CategoryMovies Category = "movies"
)

// Categories lists all categories in tab order.
var Categories = []Category{CategorySeries, CategoryMovies}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategorySeries, CategoryMovies:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Tabs returns the category names as card tab identifiers.
func Tabs() []string {
	tabs := make([]string, len(Categories))
	for i, c := range Categories {
		tabs[i] = string(c)
	}
	return tabs
}

// Entry is one movie or series on the list.
type Entry struct {
	ID        int64
	Category  Category
	Name      string
	Year      string
	Country   string
	Type      string
	PosterURL string
	Ep        string // series only
	Condition string // series only, e.g. "new", "watched"
	AddedAt   time.Time
	UpdatedAt time.Time
}

// DisplayTitle returns "<name> (<year>)", or the name when the year is unknown.
func (e *Entry) DisplayTitle() string {
	if e.Year == "" {
		return e.Name
	}
	return fmt.Sprintf("%s (%s)", e.Name, e.Year)
}

// Normalize drops series-only fields from movies.
func (e *Entry) Normalize() {
	if e.Category != CategorySeries {
		e.Ep = ""
		e.Condition = ""
	}
}

// Card converts the entry into the card rendered on its tab.
func (e *Entry) Card() cards.Card {
	return cards.Card{
		ID:        fmt.Sprintf("%s-%d", e.Category, e.ID),
		Tab:       string(e.Category),
		Title:     e.DisplayTitle(),
		Name:      e.Name,
		Type:      e.Type,
		Condition: e.Condition,
		Country:   e.Country,
	}
}

// Cards converts entries into cards, keeping order.
func Cards(entries []*Entry) []cards.Card {
	out := make([]cards.Card, len(entries))
	for i, e := range entries {
		out[i] = e.Card()
	}
	return out
}

// EntryFilter specifies criteria for listing entries.
type EntryFilter struct {
	Category *Category
	Name     *string
	Limit    int // 0 = no limit
	Offset   int
}
