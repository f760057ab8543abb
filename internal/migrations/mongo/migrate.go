package mongo

import (
	"context"
	"fmt"

	"fitstudio/internal/migrations/mongo/validators"
	"fitstudio/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	classesCollection  = "Classes"
	bookingsCollection = "Bookings"
)

// Migrate brings the database to the expected shape: collections with
// schema validators and the indexes the booking path relies on. It is
// idempotent and safe to run on every deploy.
func Migrate(ctx context.Context, client *mongo.Client, dbName string, log *logger.Logger) error {
	db := client.Database(dbName)

	if err := ensureCollection(ctx, db, classesCollection, validators.ClassValidator()); err != nil {
		return fmt.Errorf("failed to ensure %s collection: %w", classesCollection, err)
	}
	if err := ensureCollection(ctx, db, bookingsCollection, validators.BookingValidator()); err != nil {
		return fmt.Errorf("failed to ensure %s collection: %w", bookingsCollection, err)
	}

	if err := ensureClassIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure class indexes: %w", err)
	}
	if err := ensureBookingIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure booking indexes: %w", err)
	}

	log.Info("Migration completed", "database", dbName)
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}

	if len(names) == 0 {
		opts := options.CreateCollection().SetValidator(validator)
		return db.CreateCollection(ctx, name, opts)
	}

	// Collection exists; refresh the validator so schema changes roll
	// out without manual intervention.
	return db.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}).Err()
}

func ensureClassIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(classesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "start_time", Value: 1}},
			Options: options.Index().SetName("idx_start_time"),
		},
	})
	return err
}

func ensureBookingIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(bookingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// The duplicate-booking guard of last resort: even if two
			// instances race past the in-process lock, the second
			// insert fails here.
			Keys: bson.D{
				{Key: "class_id", Value: 1},
				{Key: "client_email", Value: 1},
			},
			Options: options.Index().SetName("uniq_class_email").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "client_email", Value: 1},
				{Key: "booking_time", Value: 1},
			},
			Options: options.Index().SetName("idx_email_booking_time"),
		},
	})
	return err
}
