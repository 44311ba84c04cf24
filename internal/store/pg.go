package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/worldsmith/worldsmith/internal/project"
)

// PGStore keeps project documents in a Postgres table as JSONB, one row
// per world-name slug.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore connects to Postgres, applies pending migrations, and
// returns the store.
func NewPGStore(ctx context.Context, dsn string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if err := runMigrations(ctx, dsn); err != nil {
		pool.Close()
		return nil, err
	}
	return &PGStore{pool: pool}, nil
}

// Close releases the connection pool.
func (s *PGStore) Close() {
	s.pool.Close()
}

// Save upserts the document under its world-name slug.
func (s *PGStore) Save(ctx context.Context, doc *project.Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	slug := doc.Slug()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO projects (slug, document, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (slug) DO UPDATE
		 SET document = EXCLUDED.document, updated_at = now()`,
		slug, data,
	)
	if err != nil {
		return fmt.Errorf("saving project %q: %w", slug, err)
	}
	return nil
}

// Load reads and validates the document stored under slug.
func (s *PGStore) Load(ctx context.Context, slug string) (*project.Document, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT document FROM projects WHERE slug = $1`, slug,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading project %q: %w", slug, err)
	}
	return project.Parse(data)
}

// List returns stored project slugs in sorted order.
func (s *PGStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT slug FROM projects ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("scanning project slug: %w", err)
		}
		slugs = append(slugs, slug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return slugs, nil
}

// Delete removes the stored project. Deleting an unknown slug returns
// ErrNotFound.
func (s *PGStore) Delete(ctx context.Context, slug string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("deleting project %q: %w", slug, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
