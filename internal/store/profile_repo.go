package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/keepsake-care/keepsake/internal/profile"
)

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) List(ctx context.Context) ([]profile.Person, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, relationship, location, fun_fact, photo_ref
		 FROM people ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	var people []profile.Person
	for rows.Next() {
		var p profile.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Relationship, &p.Location, &p.FunFact, &p.PhotoRef); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate people: %w", err)
	}
	return people, nil
}

func (r *profileRepo) Add(ctx context.Context, p profile.Person) error {
	if p.ID == "" {
		return fmt.Errorf("add person: missing id")
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO people (id, name, relationship, location, fun_fact, photo_ref, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Relationship, p.Location, p.FunFact, p.PhotoRef, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("insert person: %w", err)
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return nil
}
