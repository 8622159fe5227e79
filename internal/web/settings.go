package web

import (
	"net/http"
	"strings"

	"github.com/vmunix/watchlist/internal/metadata"
	"github.com/vmunix/watchlist/internal/settings"
)

type settingsView struct {
	Settings  settings.Settings
	Providers []string
	Error     string
}

var providers = []string{metadata.ProviderTMDB, metadata.ProviderOMDB, metadata.ProviderCustom}

func (s *Server) settingsForm(w http.ResponseWriter, r *http.Request) {
	if s.deps.Settings == nil {
		httpError(w, http.StatusServiceUnavailable, "settings not configured")
		return
	}
	s.render(w, http.StatusOK, "settings", settingsView{Settings: s.deps.Settings.Get(), Providers: providers})
}

func (s *Server) saveSettings(w http.ResponseWriter, r *http.Request) {
	if s.deps.Settings == nil {
		httpError(w, http.StatusServiceUnavailable, "settings not configured")
		return
	}
	if err := r.ParseForm(); err != nil {
		httpError(w, http.StatusBadRequest, "invalid form")
		return
	}

	next := settings.Settings{
		Provider:       strings.TrimSpace(r.PostFormValue("api_provider")),
		APIKey:         strings.TrimSpace(r.PostFormValue("api_key")),
		PosterAPIURL:   strings.TrimSpace(r.PostFormValue("poster_api_url")),
		TrailerAPIURL:  strings.TrimSpace(r.PostFormValue("trailer_api_url")),
		LocalMediaPath: strings.TrimSpace(r.PostFormValue("local_media_path")),
	}
	if err := s.deps.Settings.Save(next); err != nil {
		s.render(w, http.StatusBadRequest, "settings", settingsView{Settings: next, Providers: providers, Error: err.Error()})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
