package library

import (
	"errors"
	"testing"
	"time"
)

func TestStore_AddEntry(t *testing.T) {
	store := NewStore(setupTestDB(t))

	e := &Entry{
		Category:  CategorySeries,
		Name:      "Breaking Bad",
		Year:      "2008",
		Country:   "us",
		Type:      "series",
		Ep:        "5",
		Condition: "watched",
	}

	before := time.Now()
	if err := store.AddEntry(e); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	after := time.Now()

	if e.ID == 0 {
		t.Error("ID should be set after AddEntry")
	}
	if e.AddedAt.Before(before) || e.AddedAt.After(after) {
		t.Errorf("AddedAt %v not in expected range [%v, %v]", e.AddedAt, before, after)
	}

	got, err := store.GetEntry(e.ID)
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if got.Name != "Breaking Bad" || got.Year != "2008" || got.Condition != "watched" || got.Ep != "5" {
		t.Errorf("unexpected entry: %+v", got)
	}
}

func TestStore_AddEntry_MovieDropsSeriesFields(t *testing.T) {
	store := NewStore(setupTestDB(t))

	e := &Entry{Category: CategoryMovies, Name: "Inception", Year: "2010", Type: "movie", Ep: "3", Condition: "new"}
	if err := store.AddEntry(e); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	got, err := store.GetEntry(e.ID)
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if got.Ep != "" || got.Condition != "" {
		t.Errorf("movie kept series fields: ep=%q condition=%q", got.Ep, got.Condition)
	}
}

func TestStore_AddEntry_InvalidCategory(t *testing.T) {
	store := NewStore(setupTestDB(t))

	err := store.AddEntry(&Entry{Category: "books", Name: "Dune"})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestStore_AddEntry_DuplicatesAllowed(t *testing.T) {
	store := NewStore(setupTestDB(t))

	for i := 0; i < 2; i++ {
		if err := store.AddEntry(&Entry{Category: CategoryMovies, Name: "Alien", Year: "1979"}); err != nil {
			t.Fatalf("AddEntry #%d: %v", i, err)
		}
	}

	_, total, err := store.ListEntries(EntryFilter{Name: ptr("Alien")})
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 entries, got %d", total)
	}
}

func TestStore_GetEntry_NotFound(t *testing.T) {
	store := NewStore(setupTestDB(t))

	_, err := store.GetEntry(9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListEntries(t *testing.T) {
	store := NewStore(setupTestDB(t))

	for _, e := range []*Entry{
		{Category: CategorySeries, Name: "Dark"},
		{Category: CategoryMovies, Name: "Heat"},
		{Category: CategorySeries, Name: "Lost"},
		{Category: CategorySeries, Name: "Fargo"},
	} {
		if err := store.AddEntry(e); err != nil {
			t.Fatalf("AddEntry: %v", err)
		}
	}

	series := CategorySeries
	results, total, err := store.ListEntries(EntryFilter{Category: &series})
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	var names []string
	for _, e := range results {
		names = append(names, e.Name)
	}
	if len(names) != 3 || names[0] != "Dark" || names[1] != "Lost" || names[2] != "Fargo" {
		t.Errorf("expected insertion order [Dark Lost Fargo], got %v", names)
	}

	page, total, err := store.ListEntries(EntryFilter{Category: &series, Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("ListEntries page: %v", err)
	}
	if total != 3 {
		t.Errorf("paged total should stay 3, got %d", total)
	}
	if len(page) != 1 || page[0].Name != "Lost" {
		t.Errorf("expected page [Lost], got %v", page)
	}
}

func TestStore_UpdateEntry(t *testing.T) {
	store := NewStore(setupTestDB(t))

	e := &Entry{Category: CategorySeries, Name: "Severance", Ep: "1"}
	if err := store.AddEntry(e); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	e.Ep = "9"
	e.Condition = "watching"
	if err := store.UpdateEntry(e); err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}

	got, err := store.GetEntry(e.ID)
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if got.Ep != "9" || got.Condition != "watching" {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestStore_UpdateEntry_NotFound(t *testing.T) {
	store := NewStore(setupTestDB(t))

	err := store.UpdateEntry(&Entry{ID: 42, Category: CategoryMovies, Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_DeleteEntry(t *testing.T) {
	store := NewStore(setupTestDB(t))

	e := &Entry{Category: CategoryMovies, Name: "Heat"}
	if err := store.AddEntry(e); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if err := store.DeleteEntry(e.ID); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if _, err := store.GetEntry(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// idempotent
	if err := store.DeleteEntry(e.ID); err != nil {
		t.Errorf("second DeleteEntry should succeed, got %v", err)
	}
}

func TestTx_Rollback(t *testing.T) {
	store := NewStore(setupTestDB(t))

	tx, err := store.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	e := &Entry{Category: CategoryMovies, Name: "Rolled Back"}
	if err := tx.AddEntry(e); err != nil {
		t.Fatalf("AddEntry in tx: %v", err)
	}
	if _, err := tx.GetEntry(e.ID); err != nil {
		t.Fatalf("GetEntry in tx: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	if _, err := store.GetEntry(e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after rollback, got %v", err)
	}
}
