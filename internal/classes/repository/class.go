package repository

import (
	"context"
	"time"

	classerrors "fitstudio/internal/classes/errors"
	"fitstudio/pkg/logger"
	"fitstudio/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionName = "Classes"
	queryTimeout   = 5 * time.Second
)

type ClassRepository interface {
	FindUpcoming(ctx context.Context, includePast bool) ([]model.FitnessClass, error)
	FindByID(ctx context.Context, id int) (*model.FitnessClass, error)
	FindByIDs(ctx context.Context, ids []int) (map[int]model.FitnessClass, error)
	DecrementAvailableSlots(ctx context.Context, id int) error
	Insert(ctx context.Context, class *model.FitnessClass) error
}

type mongoClassRepository struct {
	collection *mongo.Collection
	log        *logger.Logger
}

func NewClassRepository(client *mongo.Client, dbName string, log *logger.Logger) ClassRepository {
	return &mongoClassRepository{
		collection: client.Database(dbName).Collection(collectionName),
		log:        log,
	}
}

// withTimeout caps standalone queries. Session contexts are passed
// through untouched so transactional reads and writes stay bound to
// their session.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, queryTimeout)
}

// FindUpcoming returns classes sorted by start time ascending. Unless
// includePast is set, only classes strictly in the future are returned.
func (r *mongoClassRepository) FindUpcoming(ctx context.Context, includePast bool) ([]model.FitnessClass, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if !includePast {
		filter["start_time"] = bson.M{"$gt": time.Now().UTC()}
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []model.FitnessClass
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *mongoClassRepository) FindByID(ctx context.Context, id int) (*model.FitnessClass, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var class model.FitnessClass
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, classerrors.ErrNotFound
		}
		return nil, err
	}

	return &class, nil
}

// FindByIDs fetches a batch of classes keyed by id, for joining bookings
// with their class details in one round trip.
func (r *mongoClassRepository) FindByIDs(ctx context.Context, ids []int) (map[int]model.FitnessClass, error) {
	if len(ids) == 0 {
		return map[int]model.FitnessClass{}, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []model.FitnessClass
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}

	result := make(map[int]model.FitnessClass, len(classes))
	for _, c := range classes {
		result[c.ID] = c
	}

	return result, nil
}

// DecrementAvailableSlots atomically takes one slot. The filter requires
// available_slots > 0 so the count can never go negative, whatever the
// caller believed when it checked.
func (r *mongoClassRepository) DecrementAvailableSlots(ctx context.Context, id int) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "available_slots": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"available_slots": -1}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return classerrors.ErrNoSlots
	}

	return nil
}

func (r *mongoClassRepository) Insert(ctx context.Context, class *model.FitnessClass) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, class)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return classerrors.ErrAlreadyExists
		}
		return err
	}

	return nil
}
