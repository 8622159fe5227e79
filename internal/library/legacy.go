package library

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// legacyEntry is one item of the original my_list.json document.
type legacyEntry struct {
	Name      string     `json:"name"`
	Year      flexString `json:"year"`
	Country   string     `json:"country"`
	Type      string     `json:"type"`
	PosterURL string     `json:"poster_url"`
	Ep        string     `json:"ep,omitempty"`
	Condition string     `json:"condition,omitempty"`
}

type legacyDocument struct {
	Series []legacyEntry `json:"series"`
	Movies []legacyEntry `json:"movies"`
}

// flexString accepts both JSON strings and numbers; hand-edited lists
// sometimes carry the year as a number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	if i, err := n.Int64(); err == nil {
		*f = flexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = flexString(n.String())
	return nil
}

// ImportJSON reads a {"series": [...], "movies": [...]} document and adds
// every item as a new entry in a single transaction. Returns the number of
// entries added.
func (s *Store) ImportJSON(r io.Reader) (int, error) {
	var doc legacyDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("decode list: %w", err)
	}

	tx, err := s.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	added := 0
	for _, group := range []struct {
		category Category
		items    []legacyEntry
	}{
		{CategorySeries, doc.Series},
		{CategoryMovies, doc.Movies},
	} {
		for _, item := range group.items {
			e := &Entry{
				Category:  group.category,
				Name:      item.Name,
				Year:      string(item.Year),
				Country:   item.Country,
				Type:      item.Type,
				PosterURL: item.PosterURL,
				Ep:        item.Ep,
				Condition: item.Condition,
			}
			if err := tx.AddEntry(e); err != nil {
				return 0, fmt.Errorf("import %s %q: %w", group.category, item.Name, err)
			}
			added++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return added, nil
}

// ExportJSON writes all entries as an indented {"series", "movies"} document.
func (s *Store) ExportJSON(w io.Writer) error {
	entries, _, err := s.ListEntries(EntryFilter{})
	if err != nil {
		return err
	}

	doc := legacyDocument{Series: []legacyEntry{}, Movies: []legacyEntry{}}
	for _, e := range entries {
		item := legacyEntry{
			Name:      e.Name,
			Year:      flexString(e.Year),
			Country:   e.Country,
			Type:      e.Type,
			PosterURL: e.PosterURL,
		}
		switch e.Category {
		case CategorySeries:
			item.Ep = e.Ep
			item.Condition = e.Condition
			doc.Series = append(doc.Series, item)
		case CategoryMovies:
			doc.Movies = append(doc.Movies, item)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode list: %w", err)
	}
	return nil
}
