package main

import (
	"context"
	"fmt"
	"os"

	"task-tracker/internal/api"
	"task-tracker/internal/cli"
	"task-tracker/internal/config"
	"task-tracker/internal/docstore"
	"task-tracker/internal/identity"
	"task-tracker/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		return err
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}
	docs, err := docstore.New(dbPath)
	if err != nil {
		return err
	}
	defer docs.Close()

	user := identity.NewStaticProvider(cfg.User.ID)
	st, err := store.New(context.Background(), docs, user.UserID())
	if err != nil {
		return err
	}
	// Close flushes queued writes before the process exits
	defer st.Close()

	root := cli.NewRootCommand(api.New(st), cfg)
	return root.Execute()
}
