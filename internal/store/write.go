package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/nonempty"
)

// Save writes a new revision of the named sequence and returns its
// revision token (a UUIDv7, so tokens sort by creation time).
//
// Zero-element input is rejected with an error wrapping
// nonempty.ErrEmpty before anything touches the database: an empty
// sequence must never exist at rest.
//
// The revision row and its elements are written in one transaction, so
// readers never observe a revision with a partial element set.
func (s *Store) Save(ctx context.Context, name string, elements []string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("save: sequence name is required")
	}
	if len(elements) == 0 {
		return "", fmt.Errorf("save %q: %w", name, nonempty.ErrEmpty)
	}

	rev := uuid.Must(uuid.NewV7()).String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("save %q: begin: %w", name, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO revisions (id, name, created_at)
		VALUES (?, ?, ?)
	`, rev, name, time.Now().UnixMilli())
	if err != nil {
		return "", fmt.Errorf("save %q: insert revision: %w", name, err)
	}

	for i, value := range elements {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO elements (revision_id, position, value)
			VALUES (?, ?, ?)
		`, rev, i, value)
		if err != nil {
			return "", fmt.Errorf("save %q: insert element %d: %w", name, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("save %q: commit: %w", name, err)
	}

	return rev, nil
}

// SaveSeq saves a sequence that already carries the non-empty guarantee.
// Unlike Save there is no empty-input failure mode.
func (s *Store) SaveSeq(ctx context.Context, name string, seq nonempty.Seq[string]) (string, error) {
	return s.Save(ctx, name, seq.Slice())
}
