package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/worldsmith/worldsmith/internal/config"
	"github.com/worldsmith/worldsmith/internal/export"
	"github.com/worldsmith/worldsmith/internal/project"
)

func init() {
	registerCommand("export", "Generate plugin YAML (regions|achievements|events|rules|all)", runExport)
}

var exportKinds = []string{"regions", "achievements", "events", "rules"}

func runExport(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	projectPath := fs.String("project", "", "path to a project JSON file")
	name := fs.String("name", "", "stored project name")
	outDir := fs.String("out", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, err := loadDocument(ctx, cfg, *projectPath, *name)
	if err != nil {
		return err
	}

	kinds, err := resolveKinds(fs.Args())
	if err != nil {
		return err
	}
	dir, err := ensureDir(*outDir)
	if err != nil {
		return err
	}

	opts := cfg.Export
	if doc.ExportSettings != nil {
		opts = *doc.ExportSettings
	}
	sampler := export.NewMobSampler(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	e := export.NewExporter(opts, sampler, logNotify)
	world := doc.World()
	sink := fileSink{dir: dir}

	var g errgroup.Group
	for _, kind := range kinds {
		g.Go(func() error {
			art, err := generate(e, kind, world, doc)
			if err != nil {
				return fmt.Errorf("exporting %s: %w", kind, err)
			}
			return sink.Offer(art)
		})
	}
	return g.Wait()
}

func resolveKinds(args []string) ([]string, error) {
	if len(args) == 0 {
		return exportKinds, nil
	}
	var kinds []string
	seen := make(map[string]bool)
	for _, a := range args {
		if a == "all" {
			return exportKinds, nil
		}
		valid := false
		for _, k := range exportKinds {
			if a == k {
				valid = true
			}
		}
		if !valid {
			return nil, fmt.Errorf("unknown export kind %q", a)
		}
		if !seen[a] {
			seen[a] = true
			kinds = append(kinds, a)
		}
	}
	return kinds, nil
}

func generate(e *export.Exporter, kind string, w export.World, doc *project.Document) (export.Artifact, error) {
	switch kind {
	case "regions":
		return e.Regions(w, doc.Regions)
	case "achievements":
		return e.Achievements(w, doc.Regions)
	case "events":
		return e.Events(w, doc.Regions)
	case "rules":
		return e.Rules(w, doc.Regions)
	default:
		return export.Artifact{}, fmt.Errorf("unknown export kind %q", kind)
	}
}

// logNotify surfaces serializer notifications on the CLI log.
func logNotify(msg string, sev export.Severity) {
	switch sev {
	case export.SevError:
		slog.Error(msg)
	case export.SevWarning:
		slog.Warn(msg)
	default:
		slog.Info(msg)
	}
}

// fileSink delivers artifacts as files in a directory.
type fileSink struct {
	dir string
}

func (s fileSink) Offer(a export.Artifact) error {
	path := filepath.Join(s.dir, a.Filename)
	if err := os.WriteFile(path, []byte(a.Content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	slog.Info("wrote artifact", "path", path)
	return nil
}

var _ export.Sink = fileSink{}
