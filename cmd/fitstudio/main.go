package main

import (
	bookinghandler "fitstudio/internal/bookings/handler"
	bookingrepo "fitstudio/internal/bookings/repository"
	bookingservice "fitstudio/internal/bookings/service"
	bookingvalidator "fitstudio/internal/bookings/validator"
	classhandler "fitstudio/internal/classes/handler"
	classrepo "fitstudio/internal/classes/repository"
	classservice "fitstudio/internal/classes/service"
	"fitstudio/internal/events"
	"fitstudio/pkg/app"
	"fitstudio/pkg/config"
	"fitstudio/pkg/kafka"
	kafka_config "fitstudio/pkg/kafka/config"
)

func main() {
	cfg := config.Load("fitstudio")
	cfg.SetMongo()

	classRepository := classrepo.NewClassRepository(cfg.Client.Mongo, cfg.MongoDatabaseName, cfg.Log)
	bookingRepository := bookingrepo.NewBookingRepository(cfg.Client.Mongo, cfg.MongoDatabaseName, cfg.Log)

	var publisher bookingservice.EventPublisher
	if cfg.EventsEnabled {
		kafkaCfg := kafka_config.Load()
		kafkaCfg.LogConfiguration(cfg.Log.Info)

		producer, err := kafka.NewProducer(kafkaCfg, events.TopicBookingCreated, events.TopicBookingCreated+".dlq")
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		defer producer.Close()
		publisher = producer
	}

	classService := classservice.NewClassService(classRepository, cfg.DisplayLocation, cfg.Log)
	bookingService := bookingservice.NewBookingService(
		bookingRepository,
		classRepository,
		bookingvalidator.NewBookingValidator(),
		publisher,
		cfg.DisplayLocation,
		cfg.Log,
	)

	application := app.NewApplication(cfg)
	application.SetApp(
		classhandler.NewClassHandler(classService, cfg.Log),
		classhandler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
	)
	application.Run()
}
