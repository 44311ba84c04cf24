package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/worldsmith/worldsmith/internal/config"
	"github.com/worldsmith/worldsmith/internal/village"
)

func init() {
	registerCommand("villages", "Derive village subregions from a CSV export into a project", runVillages)
}

func runVillages(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("villages", flag.ContinueOnError)
	projectPath := fs.String("project", "", "path to a project JSON file")
	name := fs.String("name", "", "stored project name")
	csvPath := fs.String("csv", "", "path to the village CSV export")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *csvPath == "" {
		return fmt.Errorf("-csv is required")
	}

	doc, err := loadDocument(ctx, cfg, *projectPath, *name)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(*csvPath)
	if err != nil {
		return fmt.Errorf("reading village csv: %w", err)
	}
	villages, err := village.ParseCSV(string(data))
	if err != nil {
		return err
	}

	gen := village.NewNameGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	stats := village.Derive(villages, doc.Regions, doc.World().Type, gen)

	if err := saveDocument(ctx, cfg, doc, *projectPath); err != nil {
		return err
	}

	slog.Info("derived village subregions",
		"parsed", len(villages),
		"assigned", stats.Assigned,
		"unmatched", stats.Unmatched,
	)
	return nil
}
