package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/worldsmith/worldsmith/internal/config"
	"github.com/worldsmith/worldsmith/internal/project"
	"github.com/worldsmith/worldsmith/internal/store"
)

// openStore builds the configured project store. The returned closer is
// always safe to call.
func openStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		pg, err := store.NewPGStore(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, func() {}, err
		}
		return pg, pg.Close, nil
	case config.StoreDir:
		ds, err := store.NewDirStore(cfg.DataDir)
		if err != nil {
			return nil, func() {}, err
		}
		return ds, func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// loadDocument reads a project from a file path or, when name is set,
// from the configured store. Exactly one of the two must be given.
func loadDocument(ctx context.Context, cfg config.Config, path, name string) (*project.Document, error) {
	switch {
	case path != "" && name != "":
		return nil, fmt.Errorf("use either -project or -name, not both")
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading project file: %w", err)
		}
		return project.Parse(data)
	case name != "":
		st, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer closeStore()
		return st.Load(ctx, name)
	default:
		return nil, fmt.Errorf("a project is required: pass -project <file> or -name <stored project>")
	}
}

// saveDocument writes a project back to where it came from.
func saveDocument(ctx context.Context, cfg config.Config, doc *project.Document, path string) error {
	if path != "" {
		data, err := doc.Marshal()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing project file: %w", err)
		}
		return nil
	}
	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	return st.Save(ctx, doc)
}

// ensureDir creates dir if needed and returns it.
func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return filepath.Clean(dir), nil
}
