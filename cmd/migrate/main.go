package main

import (
	"context"
	"time"

	migrations "fitstudio/internal/migrations/mongo"
	"fitstudio/pkg/config"
)

// One-shot job: create collections, validators, and indexes, then seed
// the sample schedule if the database is empty.
func main() {
	cfg := config.Load("fitstudio-migrate")
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := migrations.Migrate(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName, cfg.Log); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	if err := migrations.Seed(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName, cfg.DisplayLocation, cfg.Log); err != nil {
		cfg.Log.Fatal("Seeding failed", "error", err)
	}
}
