// Package store persists glossary terms in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"glossary/internal/glossary"
)

var (
	ErrNotFound      = errors.New("term not found")
	ErrDuplicateTerm = errors.New("term already exists")
)

const schema = `
CREATE TABLE IF NOT EXISTS terms (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	term       TEXT NOT NULL UNIQUE,
	definition TEXT NOT NULL,
	theme      TEXT NOT NULL,
	example    TEXT,
	source     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS terms_theme ON terms(theme);
`

const columns = "id, term, definition, theme, example, source"

// ListQuery filters and orders List.
type ListQuery struct {
	// Theme keeps only terms with exactly this theme when non-empty.
	Theme string
	// Alphabetical orders by term name; otherwise by id.
	Alphabetical bool
}

// Store is a SQLite-backed term repository.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create inserts a term and returns it with its assigned id.
func (s *Store) Create(ctx context.Context, f glossary.Form) (glossary.Term, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO terms (term, definition, theme, example, source) VALUES (?, ?, ?, ?, ?)`,
		f.Term, f.Definition, f.Theme, nullable(f.Example), f.Source)
	if err != nil {
		return glossary.Term{}, mapError("create term", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return glossary.Term{}, fmt.Errorf("create term: %w", err)
	}
	return glossary.Term{
		ID:         id,
		Term:       f.Term,
		Definition: f.Definition,
		Theme:      f.Theme,
		Example:    f.Example,
		Source:     f.Source,
	}, nil
}

// Get returns one term or ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (glossary.Term, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM terms WHERE id = ?`, id)
	t, err := scanTerm(row)
	if errors.Is(err, sql.ErrNoRows) {
		return glossary.Term{}, ErrNotFound
	}
	if err != nil {
		return glossary.Term{}, fmt.Errorf("get term %d: %w", id, err)
	}
	return t, nil
}

// List returns terms filtered by theme.
func (s *Store) List(ctx context.Context, q ListQuery) ([]glossary.Term, error) {
	query := `SELECT ` + columns + ` FROM terms`
	var args []any
	if q.Theme != "" {
		query += ` WHERE theme = ?`
		args = append(args, q.Theme)
	}
	if q.Alphabetical {
		query += ` ORDER BY term`
	} else {
		query += ` ORDER BY id`
	}
	return s.query(ctx, "list terms", query, args...)
}

// Search returns terms whose name or definition contains keyword.
// An empty keyword matches every term.
func (s *Store) Search(ctx context.Context, keyword string) ([]glossary.Term, error) {
	pattern := "%" + escapeLike(keyword) + "%"
	return s.query(ctx, "search terms",
		`SELECT `+columns+` FROM terms
		 WHERE term LIKE ? ESCAPE '\' OR definition LIKE ? ESCAPE '\'
		 ORDER BY id`,
		pattern, pattern)
}

// Update replaces every field of term id.
func (s *Store) Update(ctx context.Context, id int64, f glossary.Form) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE terms SET term = ?, definition = ?, theme = ?, example = ?, source = ? WHERE id = ?`,
		f.Term, f.Definition, f.Theme, nullable(f.Example), f.Source, id)
	if err != nil {
		return mapError("update term", err)
	}
	return requireRow(res, "update term")
}

// Delete removes term id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM terms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete term: %w", err)
	}
	return requireRow(res, "delete term")
}

func (s *Store) query(ctx context.Context, op, query string, args ...any) ([]glossary.Term, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	terms := []glossary.Term{}
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return terms, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTerm(sc scanner) (glossary.Term, error) {
	var t glossary.Term
	var example sql.NullString
	if err := sc.Scan(&t.ID, &t.Term, &t.Definition, &t.Theme, &example, &t.Source); err != nil {
		return glossary.Term{}, err
	}
	t.Example = example.String
	return t, nil
}

func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func mapError(op string, err error) error {
	var se sqlite3.Error
	if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrDuplicateTerm
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
