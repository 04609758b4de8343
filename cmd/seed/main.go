package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/home-hero-api/config"
	"github.com/oksasatya/home-hero-api/internal/application"
	"github.com/oksasatya/home-hero-api/internal/container"
	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	"github.com/oksasatya/home-hero-api/internal/infrastructure/mongodb"
	"github.com/oksasatya/home-hero-api/pkg/helpers"
)

// seed ensures the indexes exist and that SEED_ADMIN_EMAIL is an admin.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	if cfg.SeedAdminEmail == "" {
		logger.Fatal("SEED_ADMIN_EMAIL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn := mongodb.NewConnector(cfg.MongoURI, cfg.MongoDB, cfg.MongoMaxPool)
	conn.OnConnect(mongodb.EnsureIndexes)
	defer func() { _ = conn.Close(context.Background()) }()
	repos := container.MongoRepositories(conn, cfg.StoreTimeout)

	users := application.NewUserService(repos.Users, logger)
	u, created, err := users.Register(ctx, application.RegisterInput{Email: cfg.SeedAdminEmail, Name: "Admin"})
	if err != nil {
		logger.WithError(err).Fatal("failed to seed admin user")
	}
	if !created {
		if u, err = users.GetByEmail(ctx, cfg.SeedAdminEmail); err != nil {
			logger.WithError(err).Fatal("failed to load admin user")
		}
	}
	if !u.IsAdmin() {
		if u, err = repos.Users.UpdateRole(ctx, u.ID, entity.RoleAdmin); err != nil {
			logger.WithError(err).Fatal("failed to promote admin user")
		}
	}
	logger.WithField("id", u.ID.Hex()).WithField("email", u.Email).WithField("created", created).Info("admin ready")
}
