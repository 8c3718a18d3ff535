package newsRepo

import (
	"context"
	"fmt"
	"time"

	"libraryhub/database/repository"
	"libraryhub/models"
	"libraryhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "news"

// MongoNewsRepo implements NewsRepository using MongoDB.
type MongoNewsRepo struct {
	coll *mongo.Collection
}

// NewMongoNewsRepo creates a new instance of NewsRepository using MongoDB.
func NewMongoNewsRepo(db *mongo.Database) *MongoNewsRepo {
	return &MongoNewsRepo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates indexes for fields frequently used in queries.
func (r *MongoNewsRepo) EnsureIndexes(ctx context.Context) error {
	return repository.CreateIndexes(ctx, r.coll,
		repository.UniqueIndex("id"),
		repository.Index("isPublished", "visibility"),
	)
}

// List returns news entries, newest first.
func (r *MongoNewsRepo) List(ctx context.Context, filter models.NewsFilter) ([]models.NewsEvent, error) {
	ctx, cancel := repository.NewContext(ctx, repository.ListTimeout)
	defer cancel()

	query := bson.M{}
	if filter.PublishedOnly {
		query["isPublished"] = true
	}
	if len(filter.Visibilities) > 0 {
		query["visibility"] = bson.M{"$in": filter.Visibilities}
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve news: %w", err)
	}
	return repository.DecodeAll[models.NewsEvent](ctx, cursor)
}

// GetByID retrieves a news entry by its unique ID.
func (r *MongoNewsRepo) GetByID(ctx context.Context, id string) (*models.NewsEvent, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	var item models.NewsEvent
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		return nil, repository.Translate(err, fmt.Sprintf("failed to fetch news %s", id))
	}
	return &item, nil
}

// Create inserts a new news document.
func (r *MongoNewsRepo) Create(ctx context.Context, item *models.NewsEvent) error {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return repository.Translate(err, "failed to create news")
	}
	return nil
}

// Update applies the non-nil fields and returns the stored document.
func (r *MongoNewsRepo) Update(ctx context.Context, id string, req models.UpdateNewsRequest) (*models.NewsEvent, error) {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Body != nil {
		set["body"] = *req.Body
	}
	if req.IsPublished != nil {
		set["isPublished"] = *req.IsPublished
	}
	if req.Visibility != nil {
		set["visibility"] = *req.Visibility
	}
	if req.EventDate != nil {
		set["eventDate"] = req.EventDate.UTC()
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if len(set) == 0 {
		return nil, utils.NewValidationError("no updatable fields provided")
	}
	set["updatedAt"] = time.Now().UTC()

	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item models.NewsEvent
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&item); err != nil {
		return nil, repository.Translate(err, fmt.Sprintf("failed to update news %s", id))
	}
	return &item, nil
}

// Delete removes a news document by its ID.
func (r *MongoNewsRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete news %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("news %s: %w", id, utils.ErrNotFound)
	}
	return nil
}
