package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"go-todo-app/backend/internal/config"
	"go-todo-app/backend/internal/database"
	"go-todo-app/backend/internal/routes"
)

func main() {
	// A .env file is a local development convenience; in a deployment the
	// environment is already populated.
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded", "err", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		log.Fatal("failed to connect to database", "err", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, cfg.DSN()); err != nil {
		log.Fatal("failed to run migrations", "err", err)
	}
	log.Info("connected to Postgres, schema up to date", "host", cfg.DBHost, "db", cfg.DBName)

	r := routes.SetupRouter(pool)

	log.Info("server listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}
