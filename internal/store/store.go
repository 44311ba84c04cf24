// Package store is the persistence port for project documents. The core
// never talks to storage directly; callers inject a Store. Two
// implementations exist: a plain directory of JSON files and a Postgres
// table.
package store

import (
	"context"
	"errors"

	"github.com/worldsmith/worldsmith/internal/project"
)

// ErrNotFound is returned when no project exists under the given slug.
var ErrNotFound = errors.New("project not found")

// Store saves and loads whole project documents keyed by world-name
// slug. Save overwrites; Load returns ErrNotFound for unknown slugs.
type Store interface {
	Save(ctx context.Context, doc *project.Document) error
	Load(ctx context.Context, slug string) (*project.Document, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, slug string) error
}
