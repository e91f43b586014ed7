package kafka_middleware

import (
	"context"
	"log"
	"time"

	"carpool/pkg/kafka"
)

// LoggingProducerMiddleware logs every publish with its envelope identity.
// The key is the car ID, so these lines double as a per-car event trace.
func LoggingProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()
		err := next(ctx, msg)
		duration := time.Since(start)

		if err != nil {
			log.Printf(
				"[KAFKA PRODUCER] publish failed | topic=%s car=%s event_id=%s type=%s duration=%s error=%v",
				msg.Topic, msg.Key, msg.GetEventID(), msg.GetEventType(), duration, err,
			)
			return err
		}

		log.Printf(
			"[KAFKA PRODUCER] published | topic=%s car=%s event_id=%s type=%s duration=%s",
			msg.Topic, msg.Key, msg.GetEventID(), msg.GetEventType(), duration,
		)
		return nil
	}
}

// LoggingConsumerMiddleware logs each handled message, including the retry
// count so DLQ-bound messages are visible in the trail before they move.
func LoggingConsumerMiddleware() kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		err := next(ctx, msg)
		duration := time.Since(start)

		if err != nil {
			log.Printf(
				"[KAFKA CONSUMER] handler failed | topic=%s partition=%d offset=%d car=%s event_id=%s retries=%d duration=%s error=%v",
				msg.Topic, msg.Partition, msg.Offset, msg.Key, msg.GetEventID(), msg.GetRetryCount(), duration, err,
			)
			return err
		}

		log.Printf(
			"[KAFKA CONSUMER] handled | topic=%s partition=%d offset=%d car=%s event_id=%s duration=%s",
			msg.Topic, msg.Partition, msg.Offset, msg.Key, msg.GetEventID(), duration,
		)
		return nil
	}
}
