package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/keepsake-care/keepsake/internal/memorylog"
)

type memoryRepo struct {
	db *sql.DB
}

func (r *memoryRepo) List(ctx context.Context) ([]memorylog.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, person_name, text, kind, media_ref, created_at
		 FROM memories ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query memories: %w", err)
	}
	defer rows.Close()

	var entries []memorylog.Entry
	for rows.Next() {
		var e memorylog.Entry
		var kind string
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.PersonName, &e.Text, &kind, &e.MediaRef, &createdAt); err != nil {
			return nil, fmt.Errorf("scan memory: %w", err)
		}
		e.Kind = memorylog.EntryKind(kind)
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memories: %w", err)
	}
	return entries, nil
}

func (r *memoryRepo) Add(ctx context.Context, e memorylog.Entry) error {
	if e.ID == "" {
		return fmt.Errorf("add memory: missing id")
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO memories (id, person_name, text, kind, media_ref, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.PersonName, e.Text, string(e.Kind), e.MediaRef, createdAt.Unix())
	if err != nil {
		return fmt.Errorf("insert memory: %w", err)
	}
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM memories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete memory: %w", err)
	}
	return nil
}
