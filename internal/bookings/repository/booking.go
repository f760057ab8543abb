package repository

import (
	"context"
	"time"

	bookingerrors "fitstudio/internal/bookings/errors"
	dbmongo "fitstudio/pkg/db/mongo"
	"fitstudio/pkg/logger"
	"fitstudio/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionName = "Bookings"
	queryTimeout   = 5 * time.Second
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	ExistsByClassAndEmail(ctx context.Context, classID int, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) ([]model.Booking, error)
	ExecuteTransaction(ctx context.Context, fn dbmongo.TransactionFunc) error
}

type mongoBookingRepository struct {
	collection *mongo.Collection
	txManager  dbmongo.TransactionManager
	log        *logger.Logger
}

func NewBookingRepository(client *mongo.Client, dbName string, log *logger.Logger) BookingRepository {
	return &mongoBookingRepository{
		collection: client.Database(dbName).Collection(collectionName),
		txManager:  dbmongo.NewTransactionManager(client),
		log:        log,
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, queryTimeout)
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return bookingerrors.ErrDuplicate
		}
		return err
	}

	return nil
}

func (r *mongoBookingRepository) ExistsByClassAndEmail(ctx context.Context, classID int, email string) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{
		"class_id":     classID,
		"client_email": email,
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// FindByEmail returns the client's bookings oldest first. The caller
// passes an already-normalized email.
func (r *mongoBookingRepository) FindByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "booking_time", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"client_email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []model.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *mongoBookingRepository) ExecuteTransaction(ctx context.Context, fn dbmongo.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
