package v1

import (
	"errors"
	"net/http"

	"github.com/vmunix/watchlist/internal/metadata"
)

// trailer resolves a trailer for the modal. Lookup misses and provider
// failures both answer {"trailer_url": null}; only a request without a name
// is rejected.
func (s *Server) trailer(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := metadata.Query{
		Name:    params.Get("name"),
		Type:    params.Get("type"),
		Year:    params.Get("year"),
		Country: params.Get("country"),
	}
	if q.Name == "" {
		writeError(w, http.StatusBadRequest, "MISSING_NAME", "name is required")
		return
	}

	url, err := s.deps.Metadata.Trailer(r.Context(), q)
	if err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			s.log.Info("no trailer found", "name", q.Name, "type", q.Type)
		} else {
			s.log.Error("trailer lookup failed", "name", q.Name, "error", err)
		}
		writeJSON(w, http.StatusOK, trailerResponse{})
		return
	}
	writeJSON(w, http.StatusOK, trailerResponse{TrailerURL: &url})
}
