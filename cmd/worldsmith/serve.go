package main

import (
	"context"
	"flag"

	"github.com/worldsmith/worldsmith/internal/config"
	"github.com/worldsmith/worldsmith/internal/server"
)

func init() {
	registerCommand("serve", "Run the HTTP API", runServe)
}

func runServe(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	listen := fs.String("listen", cfg.Listen, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	return server.New(st, cfg.Export).Run(ctx, *listen)
}
