package contentRepo

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

const collectionName = "content"

// MongoContentRepo implements ContentRepository using MongoDB.
type MongoContentRepo struct {
	coll *mongo.Collection
}

// NewMongoContentRepo creates a new instance of ContentRepository using MongoDB.
func NewMongoContentRepo(db *mongo.Database) *MongoContentRepo {
	return &MongoContentRepo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates indexes for fields frequently used in queries.
func (r *MongoContentRepo) EnsureIndexes(ctx context.Context) error {
	return repository.CreateIndexes(ctx, r.coll,
		repository.UniqueIndex("id"),
		repository.Index("type", "visibility"),
	)
}

func byKey(contentType models.ContentType, id string) bson.M {
	return bson.M{"id": id, "type": contentType}
}

// List returns items of one type, newest first.
func (r *MongoContentRepo) List(ctx context.Context, filter models.ContentFilter) ([]models.Content, error) {
	ctx, cancel := repository.NewContext(ctx, repository.ListTimeout)
	defer cancel()

	query := bson.M{"type": filter.Type}
	if len(filter.Visibilities) > 0 {
		query["visibility"] = bson.M{"$in": filter.Visibilities}
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve %s content: %w", filter.Type, err)
	}
	return repository.DecodeAll[models.Content](ctx, cursor)
}

// GetByID retrieves one item of the given type.
func (r *MongoContentRepo) GetByID(ctx context.Context, contentType models.ContentType, id string) (*models.Content, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	var item models.Content
	if err := r.coll.FindOne(ctx, byKey(contentType, id)).Decode(&item); err != nil {
		return nil, repository.Translate(err, fmt.Sprintf("failed to fetch %s %s", contentType, id))
	}
	return &item, nil
}

// Create inserts a new content document.
func (r *MongoContentRepo) Create(ctx context.Context, item *models.Content) error {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return repository.Translate(err, "failed to create content")
	}
	return nil
}

// SetVisibility changes an item's visibility. A missing item yields utils.ErrNotFound.
func (r *MongoContentRepo) SetVisibility(ctx context.Context, contentType models.ContentType, id string, visibility models.Visibility) error {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"visibility": visibility, "updatedAt": time.Now().UTC()}}
	result, err := r.coll.UpdateOne(ctx, byKey(contentType, id), update)
	if err != nil {
		return fmt.Errorf("failed to update visibility of %s %s: %w", contentType, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s %s: %w", contentType, id, utils.ErrNotFound)
	}
	return nil
}

// Delete removes one item.
func (r *MongoContentRepo) Delete(ctx context.Context, contentType models.ContentType, id string) error {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, byKey(contentType, id))
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", contentType, id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s %s: %w", contentType, id, utils.ErrNotFound)
	}
	return nil
}
