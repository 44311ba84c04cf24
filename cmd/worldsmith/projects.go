package main

import (
	"context"
	"fmt"
	"os"

	"github.com/worldsmith/worldsmith/internal/config"
)

func init() {
	registerCommand("projects", "Manage stored projects (list|show <name>|delete <name>)", runProjects)
}

func runProjects(ctx context.Context, cfg config.Config, args []string) error {
	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	action := "list"
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "list":
		slugs, err := st.List(ctx)
		if err != nil {
			return err
		}
		for _, slug := range slugs {
			fmt.Println(slug)
		}
		return nil
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: worldsmith projects show <name>")
		}
		doc, err := st.Load(ctx, args[1])
		if err != nil {
			return err
		}
		data, err := doc.Marshal()
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
		fmt.Println()
		return nil
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: worldsmith projects delete <name>")
		}
		return st.Delete(ctx, args[1])
	default:
		return fmt.Errorf("unknown projects action %q", action)
	}
}
