package main

import (
	"carpool/internal/fleet/handler"
	"carpool/internal/fleet/repository"
	"carpool/internal/fleet/service"
	"carpool/pkg/app"
	"carpool/pkg/config"
)

const ServiceName = "fleet"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Fleet service")

	carRepo := repository.NewMongoCarRepository(cfg)
	fleetService := service.NewFleetService(carRepo, cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewCarHandler(fleetService, cfg.Log),
		app.NewHealthHandler(cfg),
	)
	serverApp.Run()
}
