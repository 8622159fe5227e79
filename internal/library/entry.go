package library

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

const entryColumns = "id, category, name, year, country, type, poster_url, ep, condition, added_at, updated_at"

// mapSQLiteError converts SQLite errors to package errors.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check the message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	if strings.Contains(errStr, "CHECK constraint failed") ||
		strings.Contains(errStr, "NOT NULL constraint failed") {
		return ErrConstraint
	}
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	e := &Entry{}
	err := row.Scan(&e.ID, &e.Category, &e.Name, &e.Year, &e.Country, &e.Type, &e.PosterURL, &e.Ep, &e.Condition, &e.AddedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func addEntry(q querier, e *Entry) error {
	if _, err := ParseCategory(string(e.Category)); err != nil {
		return err
	}
	e.Normalize()

	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO entries (category, name, year, country, type, poster_url, ep, condition, added_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Category, e.Name, e.Year, e.Country, e.Type, e.PosterURL, e.Ep, e.Condition, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	e.ID = id
	e.AddedAt = now
	e.UpdatedAt = now
	return nil
}

// AddEntry inserts a new entry.
// Sets ID, AddedAt, and UpdatedAt on the struct.
func (s *Store) AddEntry(e *Entry) error { return addEntry(s.db, e) }

// AddEntry inserts a new entry within a transaction.
func (t *Tx) AddEntry(e *Entry) error { return addEntry(t.tx, e) }

func getEntry(q querier, id int64) (*Entry, error) {
	e, err := scanEntry(q.QueryRow("SELECT "+entryColumns+" FROM entries WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get entry %d: %w", id, mapSQLiteError(err))
	}
	return e, nil
}

// GetEntry retrieves an entry by ID.
// Returns ErrNotFound if the entry does not exist.
func (s *Store) GetEntry(id int64) (*Entry, error) { return getEntry(s.db, id) }

// GetEntry retrieves an entry by ID within a transaction.
func (t *Tx) GetEntry(id int64) (*Entry, error) { return getEntry(t.tx, id) }

func listEntries(q querier, f EntryFilter) ([]*Entry, int, error) {
	var conditions []string
	var args []any

	if f.Category != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, *f.Category)
	}
	if f.Name != nil {
		conditions = append(conditions, "name = ?")
		args = append(args, *f.Name)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := q.QueryRow("SELECT COUNT(*) FROM entries "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count entries: %w", err)
	}

	query := "SELECT " + entryColumns + " FROM entries " + whereClause + " ORDER BY id"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan entry: %w", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate entries: %w", err)
	}

	return results, total, nil
}

// ListEntries returns entries matching the filter in insertion order.
// Returns (results, totalCount, error).
func (s *Store) ListEntries(f EntryFilter) ([]*Entry, int, error) { return listEntries(s.db, f) }

// ListEntries returns entries matching the filter within a transaction.
func (t *Tx) ListEntries(f EntryFilter) ([]*Entry, int, error) { return listEntries(t.tx, f) }

func updateEntry(q querier, e *Entry) error {
	if _, err := ParseCategory(string(e.Category)); err != nil {
		return err
	}
	e.Normalize()

	now := time.Now()
	result, err := q.Exec(`
		UPDATE entries SET category = ?, name = ?, year = ?, country = ?, type = ?, poster_url = ?, ep = ?, condition = ?, updated_at = ?
		WHERE id = ?`,
		e.Category, e.Name, e.Year, e.Country, e.Type, e.PosterURL, e.Ep, e.Condition, now, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update entry %d: %w", e.ID, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update entry %d: %w", e.ID, ErrNotFound)
	}
	e.UpdatedAt = now
	return nil
}

// UpdateEntry updates an existing entry.
// Returns ErrNotFound if the entry does not exist.
func (s *Store) UpdateEntry(e *Entry) error { return updateEntry(s.db, e) }

// UpdateEntry updates an existing entry within a transaction.
func (t *Tx) UpdateEntry(e *Entry) error { return updateEntry(t.tx, e) }

func deleteEntry(q querier, id int64) error {
	if _, err := q.Exec("DELETE FROM entries WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete entry %d: %w", id, mapSQLiteError(err))
	}
	return nil
}

// DeleteEntry removes an entry by ID.
// This operation is idempotent - no error is returned if the entry does not exist.
func (s *Store) DeleteEntry(id int64) error { return deleteEntry(s.db, id) }

// DeleteEntry removes an entry by ID within a transaction.
func (t *Tx) DeleteEntry(id int64) error { return deleteEntry(t.tx, id) }
