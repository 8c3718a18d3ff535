package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"libraryhub/database/repository"
	"libraryhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "reservations"

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a new instance of ReservationRepository using MongoDB.
func NewMongoReservationRepo(db *mongo.Database) *MongoReservationRepo {
	return &MongoReservationRepo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates indexes for fields frequently used in queries.
// At most one pending reservation may exist per user and book.
func (r *MongoReservationRepo) EnsureIndexes(ctx context.Context) error {
	onePending := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "bookId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": models.ReservationPending}),
	}
	return repository.CreateIndexes(ctx, r.coll,
		repository.UniqueIndex("id"),
		repository.Index("status"),
		onePending,
	)
}

// Create inserts a new reservation document.
func (r *MongoReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return repository.Translate(err, "failed to create reservation")
	}
	return nil
}

// ListForUser returns one user's reservations, newest first.
func (r *MongoReservationRepo) ListForUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// ListAll returns every reservation, optionally restricted to one status.
func (r *MongoReservationRepo) ListAll(ctx context.Context, status models.ReservationStatus) ([]models.Reservation, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}
	return r.find(ctx, query)
}

func (r *MongoReservationRepo) find(ctx context.Context, query bson.M) ([]models.Reservation, error) {
	ctx, cancel := repository.NewContext(ctx, repository.ListTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return repository.DecodeAll[models.Reservation](ctx, cursor)
}

// Cancel flips a pending reservation owned by userID to CANCELLED.
func (r *MongoReservationRepo) Cancel(ctx context.Context, userID, id string) (*models.Reservation, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	filter := bson.M{"id": id, "userId": userID, "status": models.ReservationPending}
	update := bson.M{"$set": bson.M{"status": models.ReservationCancelled, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var res models.Reservation
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&res); err != nil {
		return nil, repository.Translate(err, fmt.Sprintf("failed to cancel reservation %s", id))
	}
	return &res, nil
}
