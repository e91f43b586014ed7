package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carpool/internal/bookings/events"
	"carpool/internal/notify"
	"carpool/pkg/client"
	"carpool/pkg/config"
	kafkautil "carpool/pkg/kafka"
	kafka_config "carpool/pkg/kafka/config"
	kafka_middleware "carpool/pkg/kafka/middleware"
)

const (
	ServiceName   = "notifier"
	consumerGroup = "carpool-notifier"
)

func main() {
	cfg := config.Load(ServiceName)

	fleetClient := client.NewFleetClient(cfg.FleetBaseURL)
	if err := fleetClient.WaitForHealthy(30 * time.Second); err != nil {
		cfg.Log.Warn("Fleet service not healthy yet, starting anyway", "error", err)
	}

	sender := notify.NewSMTPSender(cfg)
	confirmations := notify.NewConfirmationHandler(fleetClient, sender, cfg.Log)

	consumer, err := kafkautil.NewConsumer(
		kafka_config.Load(),
		events.TopicBookingCreated,
		consumerGroup,
		events.DLQTopic,
		confirmations.Handle,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	consumer.Use(kafka_middleware.LoggingConsumerMiddleware())
	consumer.Use(kafka_middleware.MetricsConsumerMiddleware())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cfg.Log.Info("Shutting down notifier...")
		cancel()
	}()

	cfg.Log.Info("Notifier started", "topic", events.TopicBookingCreated, "group", consumerGroup)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
	cfg.Log.Info("Notifier stopped")
}
