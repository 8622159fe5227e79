package web

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/vmunix/watchlist/internal/media"
)

type localVideosView struct {
	Catalog *media.Catalog
	Error   string
}

type playerView struct {
	Title string
	Path  string
}

func (s *Server) localVideos(w http.ResponseWriter, r *http.Request) {
	if s.deps.Media == nil {
		s.render(w, http.StatusOK, "local_videos", localVideosView{Error: "Local media path not set or does not exist"})
		return
	}
	cat, err := s.deps.Media.Catalog(r.Context(), s.deps.Lookup)
	if err != nil {
		if !errors.Is(err, media.ErrNoRoot) {
			s.log.Error("catalog local media", "error", err)
		}
		s.render(w, http.StatusOK, "local_videos", localVideosView{Error: "Local media path not set or does not exist"})
		return
	}
	s.render(w, http.StatusOK, "local_videos", localVideosView{Catalog: cat})
}

// resolveMedia maps the path query parameter to a file under the media root
// and writes the error response when it cannot.
func (s *Server) resolveMedia(w http.ResponseWriter, r *http.Request) (string, bool) {
	path := r.URL.Query().Get("path")
	if path == "" {
		httpError(w, http.StatusBadRequest, "File path not provided")
		return "", false
	}
	if s.deps.Media == nil {
		httpError(w, http.StatusNotFound, "File not found")
		return "", false
	}

	full, err := s.deps.Media.Resolve(path)
	switch {
	case err == nil:
		return full, true
	case errors.Is(err, media.ErrForbidden):
		httpError(w, http.StatusForbidden, "Forbidden: file not in media directory")
	default:
		httpError(w, http.StatusNotFound, "File not found")
	}
	return "", false
}

func (s *Server) playLocal(w http.ResponseWriter, r *http.Request) {
	full, ok := s.resolveMedia(w, r)
	if !ok {
		return
	}
	s.render(w, http.StatusOK, "player", playerView{Title: filepath.Base(full), Path: full})
}

func (s *Server) videoFile(w http.ResponseWriter, r *http.Request) {
	full, ok := s.resolveMedia(w, r)
	if !ok {
		return
	}
	http.ServeFile(w, r, full)
}

func (s *Server) posterFile(w http.ResponseWriter, r *http.Request) {
	if s.deps.Posters == nil {
		http.NotFound(w, r)
		return
	}
	path, err := s.deps.Posters.Path(r.PathValue("file"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, path)
}
