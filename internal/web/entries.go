package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/vmunix/watchlist/internal/library"
	"github.com/vmunix/watchlist/internal/metadata"
)

type formView struct {
	Action     string // "Add" or "Edit"
	Entry      *library.Entry
	Categories []string
	Tab        string
	Query      string
	Error      string
}

func (s *Server) addForm(w http.ResponseWriter, r *http.Request) {
	tab, query := returnTo(r.URL.Query(), s.defaultTab)
	s.render(w, http.StatusOK, "form", formView{
		Action:     "Add",
		Entry:      &library.Entry{Category: library.Category(tab)},
		Categories: library.Tabs(),
		Tab:        tab,
		Query:      query,
	})
}

// entryFromForm applies the posted fields to e. Series-only fields are
// dropped for movies by the store.
func entryFromForm(r *http.Request, e *library.Entry) {
	e.Name = strings.TrimSpace(r.PostFormValue("name"))
	e.Year = strings.TrimSpace(r.PostFormValue("year"))
	e.Country = strings.TrimSpace(r.PostFormValue("country"))
	e.Type = strings.TrimSpace(r.PostFormValue("type"))
	e.PosterURL = strings.TrimSpace(r.PostFormValue("poster_url"))
	e.Ep = strings.TrimSpace(r.PostFormValue("ep"))
	e.Condition = strings.TrimSpace(r.PostFormValue("condition"))
}

func (s *Server) lookupPoster(r *http.Request, e *library.Entry) string {
	url, err := s.deps.Lookup.Poster(r.Context(), metadata.Query{
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
	if err := r.ParseForm(); err != nil {
		httpError(w, http.StatusBadRequest, "invalid form")
		return
	}
	tab, query := returnTo(r.PostForm, s.defaultTab)

	category, err := library.ParseCategory(r.PostFormValue("category"))
	if err != nil {
		httpError(w, http.StatusBadRequest, "category must be series or movies")
		return
	}
	e := &library.Entry{Category: category}
	entryFromForm(r, e)

	if e.Name == "" {
		s.render(w, http.StatusBadRequest, "form", formView{
			Action: "Add", Entry: e, Categories: library.Tabs(), Tab: tab, Query: query,
			Error: "Name is required.",
		})
		return
	}
	if e.PosterURL == "" {
		e.PosterURL = s.lookupPoster(r, e)
	}

	if err := s.deps.Entries.AddEntry(e); err != nil {
		s.log.Error("add entry", "name", e.Name, "error", err)
		httpError(w, http.StatusInternalServerError, "could not save entry")
		return
	}
	s.log.Info("entry added", "id", e.ID, "category", e.Category, "name", e.Name)
	http.Redirect(w, r, indexURL(tab, query), http.StatusSeeOther)
}

// entryFromPath loads the entry named by the {id} path value. Unknown ids
// send the browser back to the list.
func (s *Server) entryFromPath(w http.ResponseWriter, r *http.Request) (*library.Entry, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil, false
	}
	e, err := s.deps.Entries.GetEntry(id)
	if err != nil {
		if !errors.Is(err, library.ErrNotFound) {
			s.log.Error("get entry", "id", id, "error", err)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil, false
	}
	return e, true
}

func (s *Server) editForm(w http.ResponseWriter, r *http.Request) {
	e, ok := s.entryFromPath(w, r)
	if !ok {
		return
	}
	tab, query := returnTo(r.URL.Query(), string(e.Category))
	s.render(w, http.StatusOK, "form", formView{
		Action:     "Edit",
		Entry:      e,
		Categories: library.Tabs(),
		Tab:        tab,
		Query:      query,
	})
}

func (s *Server) editEntry(w http.ResponseWriter, r *http.Request) {
	e, ok := s.entryFromPath(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpError(w, http.StatusBadRequest, "invalid form")
		return
	}
	tab, query := returnTo(r.PostForm, string(e.Category))

	entryFromForm(r, e)
	if e.Name == "" {
		s.render(w, http.StatusBadRequest, "form", formView{
			Action: "Edit", Entry: e, Categories: library.Tabs(), Tab: tab, Query: query,
			Error: "Name is required.",
		})
		return
	}
	if r.PostForm.Has("regenerate_poster") {
		if url := s.lookupPoster(r, e); url != "" {
			e.PosterURL = url
		}
	}

	if err := s.deps.Entries.UpdateEntry(e); err != nil {
		s.log.Error("update entry", "id", e.ID, "error", err)
		httpError(w, http.StatusInternalServerError, "could not save entry")
		return
	}
	http.Redirect(w, r, indexURL(tab, query), http.StatusSeeOther)
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	tab, query := returnTo(r.URL.Query(), s.defaultTab)
	if id, err := strconv.ParseInt(r.PathValue("id"), 10, 64); err == nil {
		if err := s.deps.Entries.DeleteEntry(id); err != nil {
			s.log.Error("delete entry", "id", id, "error", err)
		}
	}
	http.Redirect(w, r, indexURL(tab, query), http.StatusSeeOther)
}
