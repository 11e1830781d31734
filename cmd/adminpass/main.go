package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lamsa-decor/backend/internal/config"
	"github.com/lamsa-decor/backend/internal/logging"
	"github.com/lamsa-decor/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

// adminpass sets (or rotates) the admin panel password. The plaintext is
// never stored; only the bcrypt hash reaches the database.
func main() {
	logging.Setup()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: adminpass <new-password>")
		os.Exit(1)
	}
	password := os.Args[1]
	if len(password) < minPasswordLen {
		logging.Fatal("password too short", "min_length", minPasswordLen)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logging.Fatal("hash failed", "error", err)
	}

	repo := repository.NewPgAdminRepository(pool)
	if err := repo.SetPasswordHash(ctx, string(hash)); err != nil {
		logging.Fatal("store failed", "error", err)
	}

	slog.Info("admin password updated")
}
