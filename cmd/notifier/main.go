package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"fitstudio/internal/events"
	"fitstudio/pkg/kafka"
	kafka_config "fitstudio/pkg/kafka/config"
	"fitstudio/pkg/logger"
)

const consumerGroup = "fitstudio-notifier"

// The notifier consumes booking events and sends confirmations. Actual
// delivery (email/SMS) is behind the notify function; for now it logs
// the confirmation payload.
func main() {
	log := logger.New(logger.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  logger.JSON,
		Service: "fitstudio-notifier",
	})

	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(log.Info)

	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		events.TopicBookingCreated,
		consumerGroup,
		events.TopicBookingCreated+".dlq",
	)
	if err != nil {
		log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Notifier starting", "topic", events.TopicBookingCreated, "group", consumerGroup)

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafka.Message) error {
		var event events.BookingCreated
		if err := msg.DecodeValue(&event); err != nil {
			return err
		}
		return notify(log, &event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("Consumer stopped", "error", err)
	}

	log.Info("Notifier shut down")
}

func notify(log *logger.Logger, event *events.BookingCreated) error {
	log.Info("Booking confirmation",
		"booking_id", event.BookingID,
		"class_id", event.ClassID,
		"class_name", event.ClassName,
		"client_name", event.ClientName,
		"client_email", event.ClientEmail,
		"booking_time", event.BookingTime,
	)
	return nil
}
