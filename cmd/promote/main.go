// Command promote assigns the admin role to a user by username.
// It is used to bootstrap an admin when the first registered account is
// not the intended one.
//
// Usage:
//
//	promote --username=alice
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/chartboard-backend/internal/adapter/postgres"
	rolerepo "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres/role"
	userrepo "github.com/heartmarshall/chartboard-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/chartboard-backend/internal/app"
	"github.com/heartmarshall/chartboard-backend/internal/auth"
	"github.com/heartmarshall/chartboard-backend/internal/config"
	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

func main() {
	username := flag.String("username", "", "username of the user to promote to admin")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --username=alice")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	role, err := rolerepo.New(pool).GetByName(ctx, auth.AdminRoleName)
	if err != nil {
		logger.Error("load admin role", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = userrepo.New(pool).AssignRoleByUsername(ctx, *username, role.ID, time.Now().UTC())
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Error("no such user", slog.String("username", *username))
		os.Exit(1)
	case err != nil:
		logger.Error("assign role", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("user promoted to admin", slog.String("username", *username))
}
