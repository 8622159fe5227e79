package web

import (
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/watchlist/internal/cards"
	"github.com/vmunix/watchlist/internal/library"
	"github.com/vmunix/watchlist/internal/media"
	"github.com/vmunix/watchlist/internal/metadata"
	"github.com/vmunix/watchlist/internal/trailer"
)

const posterWorkers = 8

type tabLink struct {
	Name   string
	URL    string
	Active bool
}

type conditionLink struct {
	Name   string
	URL    string
	Active bool
}

type cardView struct {
	cards.Card
	Visible      bool
	EntryID      int64
	Year         string
	Ep           string
	PosterURL    string
	TrailerQuery string
	MediaKind    string
}

type indexView struct {
	Tabs       []tabLink
	Tab        string
	Query      string
	Condition  string
	Conditions []conditionLink
	Cards      []cardView
	Visible    int
}

// withParam returns current with key set to value, other parameters kept.
func withParam(current *url.URL, key, value string) string {
	u := *current
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}

func mediaKind(c library.Category) string {
	if c == library.CategorySeries {
		return media.KindSeries
	}
	return media.KindMovie
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	tabs := library.Tabs()
	tab := cards.ActiveTab(values, tabs, s.defaultTab)

	entries, _, err := s.deps.Entries.ListEntries(library.EntryFilter{})
	if err != nil {
		s.log.Error("list entries", "error", err)
		httpError(w, http.StatusInternalServerError, "could not load list")
		return
	}
	byID := make(map[string]*library.Entry, len(entries))
	for _, e := range entries {
		byID[e.Card().ID] = e
	}

	ctrl, err := cards.NewController(cards.GroupByTab(library.Cards(entries), tabs...), tab)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	results := ctrl.Load(cards.State{Query: values.Get("q"), Condition: values.Get("condition")})
	state := ctrl.State()

	view := indexView{
		Tab:       tab,
		Query:     state.Query,
		Condition: state.Condition,
		Cards:     make([]cardView, len(results)),
	}
	for _, t := range tabs {
		view.Tabs = append(view.Tabs, tabLink{Name: t, URL: cards.TabURL(r.URL, t), Active: t == tab})
	}

	all := make([]cards.Card, len(results))
	for i, res := range results {
		all[i] = res.Card
	}
	for _, c := range append([]string{cards.ConditionAll}, cards.Conditions(all)...) {
		view.Conditions = append(view.Conditions, conditionLink{
			Name:   c,
			URL:    withParam(r.URL, "condition", c),
			Active: c == state.Condition,
		})
	}

	for i, res := range results {
		e := byID[res.Card.ID]
		view.Cards[i] = cardView{
			Card:         res.Card,
			Visible:      res.Visible,
			EntryID:      e.ID,
			Year:         e.Year,
			Ep:           e.Ep,
			PosterURL:    e.PosterURL,
			TrailerQuery: trailer.NewRequest(res.Card).Encode(),
			MediaKind:    mediaKind(e.Category),
		}
		if res.Visible {
			view.Visible++
		}
	}
	s.resolvePosters(r, view.Cards)

	s.render(w, http.StatusOK, "index", view)
}

// resolvePosters swaps poster URLs for local thumbnails, concurrently.
func (s *Server) resolvePosters(r *http.Request, cs []cardView) {
	if s.deps.Posters == nil {
		return
	}
	var g errgroup.Group
	g.SetLimit(posterWorkers)
	for i := range cs {
		c := &cs[i]
		g.Go(func() error {
			c.PosterURL = s.deps.Posters.Resolve(r.Context(), c.PosterURL, &metadata.Query{
				Name:    c.Name,
				Type:    c.Type,
				Year:    c.Year,
				Country: c.Country,
			})
			return nil
		})
	}
	_ = g.Wait()
}
