// Package v1 implements the JSON API and the trailer endpoint.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/vmunix/watchlist/internal/cards"
	"github.com/vmunix/watchlist/internal/library"
	"github.com/vmunix/watchlist/internal/media"
	"github.com/vmunix/watchlist/internal/metadata"
	"github.com/vmunix/watchlist/internal/settings"
)

// Config holds API server configuration.
type Config struct {
	Version    string
	DefaultTab string
}

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	cfg  Config
	log  *slog.Logger
}

// NewWithDeps creates a new v1 API server with explicit dependencies.
func NewWithDeps(deps ServerDeps, cfg Config, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDependency, err)
	}
	if cfg.DefaultTab == "" {
		cfg.DefaultTab = string(library.CategorySeries)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{deps: deps, cfg: cfg, log: log}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Cards
	mux.HandleFunc("GET /api/v1/cards", s.listCards)

	// Entries
	mux.HandleFunc("GET /api/v1/entries", s.listEntries)
	mux.HandleFunc("GET /api/v1/entries/{id}", s.getEntry)
	mux.HandleFunc("POST /api/v1/entries", s.addEntry)
	mux.HandleFunc("PUT /api/v1/entries/{id}", s.updateEntry)
	mux.HandleFunc("DELETE /api/v1/entries/{id}", s.deleteEntry)

	// Local media
	mux.HandleFunc("GET /api/v1/local_media", s.requireMedia(s.localMedia))

	// Settings
	mux.HandleFunc("GET /api/v1/settings", s.requireSettings(s.getSettings))
	mux.HandleFunc("PUT /api/v1/settings", s.requireSettings(s.putSettings))

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)

	// Trailer lookup used by the page's trailer modal
	mux.HandleFunc("GET /trailer", s.trailer)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// queryString extracts an optional string from query string.
func queryString(r *http.Request, name string) *string {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil
	}
	return &val
}

func (s *Server) listCards(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	tab := cards.ActiveTab(values, library.Tabs(), s.cfg.DefaultTab)

	category := library.Category(tab)
	entries, _, err := s.deps.Entries.ListEntries(library.EntryFilter{Category: &category})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	ctrl, err := cards.NewController(map[string][]cards.Card{tab: library.Cards(entries)}, tab)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	results := ctrl.Load(cards.State{Query: values.Get("q"), Condition: values.Get("condition")})
	state := ctrl.State()

	resp := cardsResponse{
		Tab:       tab,
		Query:     state.Query,
		Condition: state.Condition,
		Cards:     make([]cardResponse, len(results)),
	}
	for i, res := range results {
		resp.Cards[i] = cardResponse{
			ID:        res.Card.ID,
			Title:     res.Card.Title,
			Name:      res.Card.Name,
			Type:      res.Card.Type,
			Condition: res.Card.Condition,
			Country:   res.Card.Country,
			Visible:   res.Visible,
		}
		if res.Visible {
			resp.Visible++
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func entryToResponse(e *library.Entry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		Category:  string(e.Category),
		Name:      e.Name,
		Year:      e.Year,
		Country:   e.Country,
		Type:      e.Type,
		PosterURL: e.PosterURL,
		Ep:        e.Ep,
		Condition: e.Condition,
		AddedAt:   e.AddedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	filter := library.EntryFilter{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}
	if catStr := queryString(r, "category"); catStr != nil {
		cat, err := library.ParseCategory(*catStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_CATEGORY", "category must be 'series' or 'movies'")
			return
		}
		filter.Category = &cat
	}

	items, total, err := s.deps.Entries.ListEntries(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	resp := listEntriesResponse{
		Items:  make([]entryResponse, len(items)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i, e := range items {
		resp.Items[i] = entryToResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	e, err := s.deps.Entries.GetEntry(id)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Entry not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entryToResponse(e))
}

// lookupPoster asks the metadata provider for a poster. Failures are logged
// and yield an empty URL; an entry is never rejected for lack of a poster.
func (s *Server) lookupPoster(r *http.Request, e *library.Entry) string {
	url, err := s.deps.Metadata.Poster(r.Context(), metadata.Query{
		Name:    e.Name,
		Type:    e.Type,
		Year:    e.Year,
		Country: e.Country,
	})
	if err != nil {
		s.log.Warn("poster lookup failed", "name", e.Name, "error", err)
		return ""
	}
	return url
}

func (s *Server) addEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	category, err := library.ParseCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_CATEGORY", "category must be 'series' or 'movies'")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "MISSING_NAME", "name is required")
		return
	}

	e := &library.Entry{
		Category:  category,
		Name:      req.Name,
		Year:      req.Year,
		Country:   req.Country,
		Type:      req.Type,
		PosterURL: req.PosterURL,
		Ep:        req.Ep,
		Condition: req.Condition,
	}
	if e.PosterURL == "" {
		e.PosterURL = s.lookupPoster(r, e)
	}

	if err := s.deps.Entries.AddEntry(e); err != nil {
		if errors.Is(err, library.ErrDuplicate) {
			writeError(w, http.StatusConflict, "DUPLICATE", "Entry already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, entryToResponse(e))
}

func (s *Server) updateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	e, err := s.deps.Entries.GetEntry(id)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Entry not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	// Apply updates
	for dst, src := range map[*string]*string{
		&e.Name:      req.Name,
		&e.Year:      req.Year,
		&e.Country:   req.Country,
		&e.Type:      req.Type,
		&e.PosterURL: req.PosterURL,
		&e.Ep:        req.Ep,
		&e.Condition: req.Condition,
	} {
		if src != nil {
			*dst = *src
		}
	}
	if req.RegeneratePoster {
		if url := s.lookupPoster(r, e); url != "" {
			e.PosterURL = url
		}
	}

	if err := s.deps.Entries.UpdateEntry(e); err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entryToResponse(e))
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	if err := s.deps.Entries.DeleteEntry(id); err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) localMedia(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "MISSING_NAME", "name is required")
		return
	}

	matches, err := s.deps.Media.Find(name, r.URL.Query().Get("type"))
	if err != nil {
		if errors.Is(err, media.ErrNoRoot) {
			writeError(w, http.StatusConflict, "NO_MEDIA_PATH", "Local media path not set or does not exist")
			return
		}
		s.log.Error("scan local media", "error", err)
		writeError(w, http.StatusInternalServerError, "SCAN_ERROR", "Error scanning media files")
		return
	}

	resp := localMediaResponse{Results: make([]localMediaItem, len(matches))}
	for i, m := range matches {
		resp.Results[i] = localMediaItem{
			Name:    m.Name,
			Path:    m.Path,
			Size:    m.HumanSize(),
			Episode: m.Episode,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Settings.Get())
}

func (s *Server) putSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if err := s.deps.Settings.Save(req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_SETTINGS", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Settings.Get())
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	_, total, err := s.deps.Entries.ListEntries(library.EntryFilter{Limit: 1})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	resp := statusResponse{Status: "ok", Version: s.cfg.Version, Entries: total}
	if s.deps.Settings != nil {
		resp.Provider = s.deps.Settings.Get().Provider
	}
	writeJSON(w, http.StatusOK, resp)
}
