package applicationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"libraryhub/database/repository"
	"libraryhub/models"
	"libraryhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "applications"

// MongoApplicationRepo implements ApplicationRepository using MongoDB.
type MongoApplicationRepo struct {
	coll *mongo.Collection
}

// NewMongoApplicationRepo creates a new instance of ApplicationRepository using MongoDB.
func NewMongoApplicationRepo(db *mongo.Database) *MongoApplicationRepo {
	return &MongoApplicationRepo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates indexes; a user may have only one pending application.
func (r *MongoApplicationRepo) EnsureIndexes(ctx context.Context) error {
	onePending := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": models.ApplicationPending}),
	}
	return repository.CreateIndexes(ctx, r.coll,
		repository.UniqueIndex("id"),
		repository.Index("status"),
		onePending,
	)
}

// Create inserts a new application document.
func (r *MongoApplicationRepo) Create(ctx context.Context, app *models.MemberApplication) error {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	app.CreatedAt = time.Now().UTC()
	if _, err := r.coll.InsertOne(ctx, app); err != nil {
		return repository.Translate(err, "failed to create application")
	}
	return nil
}

// GetByID retrieves an application by its unique ID.
func (r *MongoApplicationRepo) GetByID(ctx context.Context, id string) (*models.MemberApplication, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	var app models.MemberApplication
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&app); err != nil {
		return nil, repository.Translate(err, fmt.Sprintf("failed to fetch application %s", id))
	}
	return &app, nil
}

// List returns applications, oldest first so reviewers work the queue in order.
func (r *MongoApplicationRepo) List(ctx context.Context, status models.ApplicationStatus) ([]models.MemberApplication, error) {
	ctx, cancel := repository.NewContext(ctx, repository.ListTimeout)
	defer cancel()

	query := bson.M{}
	if status != "" {
		query["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve applications: %w", err)
	}
	return repository.DecodeAll[models.MemberApplication](ctx, cursor)
}

// Review records a decision on a pending application.
func (r *MongoApplicationRepo) Review(ctx context.Context, id string, status models.ApplicationStatus, reviewerID, note string) (*models.MemberApplication, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"id": id, "status": models.ApplicationPending}
	update := bson.M{"$set": bson.M{
		"status":     status,
		"reviewedBy": reviewerID,
		"reviewNote": note,
		"reviewedAt": now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var app models.MemberApplication
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&app)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("application %s: %w", id, utils.NewConflictError("Application has already been reviewed"))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to review application %s: %w", id, err)
	}
	return &app, nil
}
