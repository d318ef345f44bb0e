package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	dbfs "github.com/garnizeh/watchrepair/db"
	"github.com/garnizeh/watchrepair/internal/config"
	"github.com/garnizeh/watchrepair/internal/db"
	"github.com/garnizeh/watchrepair/internal/repository/sqlite"
	"github.com/garnizeh/watchrepair/pkg/models"
	"github.com/garnizeh/watchrepair/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

// create_user adds a back-office account to the sqlite database. The
// password is stored as a bcrypt hash.
func main() {
	configPath := flag.String("config", "", "Path to config YAML file")
	username := flag.String("username", "", "Account username")
	password := flag.String("password", "", "Account password (or WATCH_USER_PASSWORD)")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv("WATCH_USER_PASSWORD")
	}
	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "username and password are required")
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.Logger()

	database, err := db.New(ctx, cfg.DatabasePath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash error: %v\n", err)
		os.Exit(1)
	}

	u, err := sqlite.New(database, logger).CreateUser(ctx, &models.InsertUser{Username: *username, Password: string(hash)})
	if errors.Is(err, repository.ErrUsernameTaken) {
		fmt.Fprintf(os.Stderr, "User %q already exists\n", *username)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Create user error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created user %q with id %d.\n", u.Username, u.ID)
}
