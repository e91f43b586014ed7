package main

import (
	"context"
	"time"

	migrations "carpool/internal/migrations/mongo"
	"carpool/pkg/config"
)

const ServiceName = "migrate"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := migrations.RunMigration(ctx, cfg.Client.Mongo); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	cfg.Log.Info("Migrations completed")
}
