// Worldsmith turns annotated map projects into plugin configuration.
//
// Usage:
//
//	worldsmith export -project map.json regions achievements   # specific artifacts
//	worldsmith export -name my_world all                       # everything, from the store
//	worldsmith villages -project map.json -csv villages.csv    # derive village subregions
//	worldsmith projects list                                   # stored projects
//	worldsmith serve                                           # HTTP API
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/worldsmith/worldsmith/internal/config"
)

const defaultConfigPath = "worldsmith.yaml"

type command struct {
	name string
	desc string
	run  func(ctx context.Context, cfg config.Config, args []string) error
}

var commands []command

func registerCommand(name, desc string, run func(ctx context.Context, cfg config.Config, args []string) error) {
	commands = append(commands, command{name: name, desc: desc, run: run})
}

func main() {
	// Optional .env overlay for local development.
	_ = godotenv.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfgPath := defaultConfigPath
	if p := os.Getenv("WORLDSMITH_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	name := os.Args[1]
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}
		if err := cmd.run(ctx, cfg, os.Args[2:]); err != nil {
			slog.Error("fatal", "command", name, "err", err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: worldsmith <command> [flags]")
	fmt.Fprintln(os.Stderr, "\ncommands:")
	for _, cmd := range commands {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n", cmd.name, cmd.desc)
	}
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
