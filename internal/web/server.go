// Package web serves the HTML pages of the list.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/vmunix/watchlist/internal/library"
	"github.com/vmunix/watchlist/internal/media"
	"github.com/vmunix/watchlist/internal/metadata"
	"github.com/vmunix/watchlist/internal/settings"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"index", "form", "settings", "local_videos", "player"}

// EntryStore is the entry persistence the pages need.
type EntryStore interface {
	AddEntry(e *library.Entry) error
	GetEntry(id int64) (*library.Entry, error)
	ListEntries(f library.EntryFilter) ([]*library.Entry, int, error)
	UpdateEntry(e *library.Entry) error
	DeleteEntry(id int64) error
}

// PosterLookup finds poster URLs for new entries and local media.
type PosterLookup interface {
	Poster(ctx context.Context, q metadata.Query) (string, error)
}

// PosterCache serves local thumbnails of poster URLs.
type PosterCache interface {
	Resolve(ctx context.Context, url string, fallback *metadata.Query) string
	Path(name string) (string, error)
}

// LocalMedia browses and resolves files under the media path.
type LocalMedia interface {
	Catalog(ctx context.Context, posters media.PosterFinder) (*media.Catalog, error)
	Resolve(path string) (string, error)
}

// SettingsManager reads and saves the runtime settings.
type SettingsManager interface {
	Get() settings.Settings
	Save(s settings.Settings) error
}

// Deps contains the dependencies of the pages. Posters, Media and Settings
// are optional.
type Deps struct {
	Entries  EntryStore
	Lookup   PosterLookup
	Posters  PosterCache
	Media    LocalMedia
	Settings SettingsManager
}

// Server renders the pages.
type Server struct {
	deps       Deps
	defaultTab string
	pages      map[string]*template.Template
	log        *slog.Logger
}

// New parses the page templates and returns the page server.
func New(deps Deps, log *slog.Logger) (*Server, error) {
	if deps.Entries == nil || deps.Lookup == nil {
		return nil, errors.New("web: entry store and poster lookup are required")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tpl, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = tpl
	}

	return &Server{
		deps:       deps,
		defaultTab: string(library.CategorySeries),
		pages:      pages,
		log:        log,
	}, nil
}

// RegisterRoutes registers page routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.index)

	mux.HandleFunc("GET /add", s.addForm)
	mux.HandleFunc("POST /add", s.addEntry)
	mux.HandleFunc("GET /edit/{id}", s.editForm)
	mux.HandleFunc("POST /edit/{id}", s.editEntry)
	mux.HandleFunc("GET /delete/{id}", s.deleteEntry)

	mux.HandleFunc("GET /settings", s.settingsForm)
	mux.HandleFunc("POST /settings", s.saveSettings)

	mux.HandleFunc("GET /local_videos", s.localVideos)
	mux.HandleFunc("GET /play_local", s.playLocal)
	mux.HandleFunc("GET /video_file", s.videoFile)

	mux.HandleFunc("GET /temp/{file}", s.posterFile)
}

func (s *Server) render(w http.ResponseWriter, code int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := s.pages[page].Execute(w, data); err != nil {
		s.log.Error("render page", "page", page, "error", err)
	}
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}

// indexURL returns the list page for tab with the query carried over.
func indexURL(tab, query string) string {
	v := url.Values{}
	v.Set("tab", tab)
	v.Set("q", query)
	return "/?" + v.Encode()
}

// returnTo reads the tab and query a form should return to.
func returnTo(values url.Values, def string) (tab, query string) {
	tab = values.Get("tab")
	if tab == "" {
		tab = def
	}
	return tab, values.Get("q")
}
