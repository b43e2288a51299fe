package store

import (
	"context"
	"database/sql"
	"fmt"
)

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) CurrentLevel(ctx context.Context) (int, error) {
	var level int
	err := r.db.QueryRowContext(ctx, `SELECT level FROM progress WHERE id = 1`).Scan(&level)
	if err != nil {
		return 0, fmt.Errorf("query level: %w", err)
	}
	return level, nil
}

func (r *progressRepo) UnlockNext(ctx context.Context) (int, error) {
	var level int
	err := r.db.QueryRowContext(ctx,
		`UPDATE progress SET level = level + 1 WHERE id = 1 RETURNING level`).Scan(&level)
	if err != nil {
		return 0, fmt.Errorf("unlock level: %w", err)
	}
	return level, nil
}
