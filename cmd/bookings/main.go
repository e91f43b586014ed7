package main

import (
	"carpool/internal/bookings/events"
	"carpool/internal/bookings/handler"
	"carpool/internal/bookings/repository"
	"carpool/internal/bookings/service"
	"carpool/internal/bookings/validator"
	"carpool/pkg/app"
	"carpool/pkg/config"
	kafkautil "carpool/pkg/kafka"
	kafka_config "carpool/pkg/kafka/config"
	kafka_middleware "carpool/pkg/kafka/middleware"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Bookings service")
	bookingService := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, cfg.Log),
		app.NewHealthHandler(cfg),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	lockRepo := repository.NewBookingLockRepository(cfg)

	bookingService := service.NewBookingService(
		bookingRepo,
		lockRepo,
		bookingValidator,
		initPublisher(cfg),
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}

// initPublisher returns nil when Kafka is unreachable; bookings still work,
// only confirmation emails are lost.
func initPublisher(cfg *config.Config) events.Publisher {
	producer, err := kafkautil.NewProducer(kafka_config.Load(), events.TopicBookingCreated, events.DLQTopic)
	if err != nil {
		cfg.Log.Warn("Kafka producer unavailable, booking events disabled", "error", err)
		return nil
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware())
	producer.Use(kafka_middleware.MetricsProducerMiddleware())
	return events.NewKafkaPublisher(producer)
}
