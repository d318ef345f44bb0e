package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	dbfs "github.com/garnizeh/watchrepair/db"
	"github.com/garnizeh/watchrepair/internal/config"
	"github.com/garnizeh/watchrepair/internal/db"
	"github.com/garnizeh/watchrepair/internal/repository/sqlite"
	"github.com/garnizeh/watchrepair/internal/seed"
)

func main() {
	configPath := flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.Logger()

	database, err := db.New(ctx, cfg.DatabasePath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	seeded, err := seed.LoadIfEmpty(ctx, sqlite.New(database, logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
		os.Exit(1)
	}

	if seeded {
		fmt.Println("Database initialized and catalog seeded.")
		return
	}
	fmt.Println("Database initialized; catalog already present.")
}
