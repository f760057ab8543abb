package mongo

import (
	"context"
	"fmt"
	"time"

	"fitstudio/pkg/logger"
	"fitstudio/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Seed inserts the sample schedule when the Classes collection is
// empty. Start times are anchored to upcoming mornings in the studio's
// timezone, then stored as UTC instants.
func Seed(ctx context.Context, client *mongo.Client, dbName string, studio *time.Location, log *logger.Logger) error {
	collection := client.Database(dbName).Collection(classesCollection)

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count classes: %w", err)
	}
	if count > 0 {
		log.Info("Classes collection already seeded", "count", count)
		return nil
	}

	classes := sampleClasses(studio)
	docs := make([]interface{}, 0, len(classes))
	for i := range classes {
		docs = append(docs, classes[i])
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed classes: %w", err)
	}

	log.Info("Seeded sample classes", "count", len(classes))
	return nil
}

func sampleClasses(studio *time.Location) []model.FitnessClass {
	// Tomorrow 07:00 in studio time as a baseline keeps every seeded
	// class bookable on a fresh install.
	now := time.Now().In(studio)
	base := time.Date(now.Year(), now.Month(), now.Day(), 7, 0, 0, 0, studio).AddDate(0, 0, 1)

	return []model.FitnessClass{
		{
			ID:              1,
			Name:            "Yoga",
			Instructor:      "Priya Sharma",
			StartTime:       base.UTC(),
			DurationMinutes: 60,
			TotalSlots:      15,
			AvailableSlots:  15,
		},
		{
			ID:              2,
			Name:            "Zumba",
			Instructor:      "Rahul Verma",
			StartTime:       base.Add(3 * time.Hour).UTC(),
			DurationMinutes: 45,
			TotalSlots:      20,
			AvailableSlots:  20,
		},
		{
			ID:              3,
			Name:            "HIIT",
			Instructor:      "Amit Singh",
			StartTime:       base.Add(11 * time.Hour).UTC(),
			DurationMinutes: 30,
			TotalSlots:      12,
			AvailableSlots:  12,
		},
		{
			ID:              4,
			Name:            "Yoga",
			Instructor:      "Priya Sharma",
			StartTime:       base.AddDate(0, 0, 1).UTC(),
			DurationMinutes: 60,
			TotalSlots:      15,
			AvailableSlots:  15,
		},
	}
}
