package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/worldsmith/worldsmith/internal/project"
)

// DirStore keeps one JSON document per project in a directory. Writes go
// through a temp file and rename so a crash never leaves a half-written
// project behind.
type DirStore struct {
	dir string
}

// NewDirStore creates the directory if needed and returns the store.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating project directory %s: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(slug string) string {
	return filepath.Join(s.dir, slug+".json")
}

// Save writes the document under its world-name slug.
func (s *DirStore) Save(_ context.Context, doc *project.Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	slug := doc.Slug()
	tmp, err := os.CreateTemp(s.dir, slug+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", slug, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing project %s: %w", slug, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing project %s: %w", slug, err)
	}
	if err := os.Rename(tmp.Name(), s.path(slug)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("saving project %s: %w", slug, err)
	}
	return nil
}

// Load reads and validates the document stored under slug.
func (s *DirStore) Load(_ context.Context, slug string) (*project.Document, error) {
	data, err := os.ReadFile(s.path(slug))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading project %s: %w", slug, err)
	}
	return project.Parse(data)
}

// List returns the stored project slugs in sorted order.
func (s *DirStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	var slugs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Delete removes the stored project. Deleting an unknown slug returns
// ErrNotFound.
func (s *DirStore) Delete(_ context.Context, slug string) error {
	err := os.Remove(s.path(slug))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting project %s: %w", slug, err)
	}
	return nil
}
