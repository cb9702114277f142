// Command seed-admin creates the first super admin account. It is safe to
// run repeatedly: an existing account with the same email is left as is.
//
// Flags:
//
//	--email     admin email (env ADMIN_EMAIL)
//	--name      display name (env ADMIN_NAME, default "Administrator")
//	--password  password (env ADMIN_PASSWORD)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres/admin"
	"github.com/heartmarshall/fieldreports-backend/internal/app"
	authpkg "github.com/heartmarshall/fieldreports-backend/internal/auth"
	"github.com/heartmarshall/fieldreports-backend/internal/config"
	authsvc "github.com/heartmarshall/fieldreports-backend/internal/service/auth"
)

func main() {
	emailFlag := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
	nameFlag := flag.String("name", envOr("ADMIN_NAME", "Administrator"), "display name")
	passwordFlag := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	jwt := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	svc := authsvc.NewService(logger, admin.New(pool), jwt)

	a, created, err := svc.Bootstrap(ctx, authsvc.BootstrapInput{
		Email:    *emailFlag,
		Name:     *nameFlag,
		Password: *passwordFlag,
	})
	if err != nil {
		logger.Error("bootstrap admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !created {
		logger.Info("admin already exists", slog.String("email", a.Email))
		return
	}
	logger.Info("admin created", slog.String("email", a.Email), slog.String("id", a.ID.String()))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
