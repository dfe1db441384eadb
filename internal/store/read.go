package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/nonempty"
)

// ErrNotFound is returned by Load and Revisions when no revision exists
// for the requested name.
var ErrNotFound = errors.New("sequence not found")

// Revision describes one stored revision of a named sequence.
type Revision struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"` // unix milliseconds
	Len       int    `json:"len"`
}

// Load returns the latest revision of the named sequence along with its
// revision token.
//
// A revision with zero element rows means the invariant was violated at
// rest (the writer path forbids it); Load reports that as a corruption
// error wrapping nonempty.ErrEmpty instead of fabricating an empty
// sequence.
func (s *Store) Load(ctx context.Context, name string) (nonempty.Seq[string], string, error) {
	var rev string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM revisions
		WHERE name = ?
		ORDER BY id DESC
		LIMIT 1
	`, name).Scan(&rev)
	if errors.Is(err, sql.ErrNoRows) {
		return nonempty.Seq[string]{}, "", fmt.Errorf("load %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nonempty.Seq[string]{}, "", fmt.Errorf("load %q: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT value FROM elements
		WHERE revision_id = ?
		ORDER BY position
	`, rev)
	if err != nil {
		return nonempty.Seq[string]{}, "", fmt.Errorf("load %q: %w", name, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nonempty.Seq[string]{}, "", fmt.Errorf("load %q: scan: %w", name, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nonempty.Seq[string]{}, "", fmt.Errorf("load %q: %w", name, err)
	}

	seq, err := nonempty.TryFromSlice(values)
	if err != nil {
		return nonempty.Seq[string]{}, "", fmt.Errorf("load %q: revision %s corrupt: %w", name, rev, err)
	}

	return seq, rev, nil
}

// Revisions returns the revision history for a name, newest first.
func (s *Store) Revisions(ctx context.Context, name string) ([]Revision, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.name, r.created_at, COUNT(e.position)
		FROM revisions r
		LEFT JOIN elements e ON e.revision_id = r.id
		WHERE r.name = ?
		GROUP BY r.id
		ORDER BY r.id DESC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("revisions %q: %w", name, err)
	}
	defer rows.Close()

	var revs []Revision
	for rows.Next() {
		var r Revision
		if err := rows.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.Len); err != nil {
			return nil, fmt.Errorf("revisions %q: scan: %w", name, err)
		}
		revs = append(revs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("revisions %q: %w", name, err)
	}
	if len(revs) == 0 {
		return nil, fmt.Errorf("revisions %q: %w", name, ErrNotFound)
	}

	return revs, nil
}
