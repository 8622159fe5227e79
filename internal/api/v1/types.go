package v1

import "time"

// entryResponse is the API representation of an entry.
type entryResponse struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Year      string    `json:"year"`
	Country   string    `json:"country"`
	Type      string    `json:"type"`
	PosterURL string    `json:"poster_url"`
	Ep        string    `json:"ep,omitempty"`
	Condition string    `json:"condition,omitempty"`
	AddedAt   time.Time `json:"added_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// listEntriesResponse is the response for GET /entries.
type listEntriesResponse struct {
	Items  []entryResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// addEntryRequest is the request body for POST /entries. An empty poster
// URL is looked up from the metadata provider.
type addEntryRequest struct {
	Category  string `json:"category"`
	Name      string `json:"name"`
	Year      string `json:"year"`
	Country   string `json:"country"`
	Type      string `json:"type"`
	PosterURL string `json:"poster_url"`
	Ep        string `json:"ep"`
	Condition string `json:"condition"`
}

// updateEntryRequest is the request body for PUT /entries/{id}.
// Only non-nil fields are applied.
type updateEntryRequest struct {
	Name             *string `json:"name"`
	Year             *string `json:"year"`
	Country          *string `json:"country"`
	Type             *string `json:"type"`
	PosterURL        *string `json:"poster_url"`
	Ep               *string `json:"ep"`
	Condition        *string `json:"condition"`
	RegeneratePoster bool    `json:"regenerate_poster"`
}

// cardResponse is a card with its computed visibility.
type cardResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Condition string `json:"condition"`
	Country   string `json:"country"`
	Visible   bool   `json:"visible"`
}

// cardsResponse is the response for GET /cards.
type cardsResponse struct {
	Tab       string         `json:"tab"`
	Query     string         `json:"query"`
	Condition string         `json:"condition"`
	Cards     []cardResponse `json:"cards"`
	Visible   int            `json:"visible"`
}

// localMediaResponse is the response for GET /local_media.
type localMediaResponse struct {
	Results []localMediaItem `json:"results"`
}

type localMediaItem struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Size    string `json:"size"`
	Episode string `json:"episode,omitempty"`
}

// trailerResponse is the response for GET /trailer. A nil URL is encoded as
// null.
type trailerResponse struct {
	TrailerURL *string `json:"trailer_url"`
}

type statusResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Entries  int    `json:"entries"`
	Provider string `json:"provider,omitempty"`
}
