package themeRepo

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

const collectionName = "settings"

// MongoThemeRepo implements ThemeRepository using MongoDB.
type MongoThemeRepo struct {
	coll *mongo.Collection
}

// NewMongoThemeRepo creates a new instance of ThemeRepository using MongoDB.
func NewMongoThemeRepo(db *mongo.Database) *MongoThemeRepo {
	return &MongoThemeRepo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique key index.
func (r *MongoThemeRepo) EnsureIndexes(ctx context.Context) error {
	return repository.CreateIndexes(ctx, r.coll, repository.UniqueIndex("key"))
}

// Get returns the theme stored under key.
func (r *MongoThemeRepo) Get(ctx context.Context, key string) (*models.Theme, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	var theme models.Theme
	if err := r.coll.FindOne(ctx, bson.M{"key": key}).Decode(&theme); err != nil {
		return nil, repository.Translate(err, fmt.Sprintf("failed to fetch theme %s", key))
	}
	return &theme, nil
}

// Upsert replaces the theme stored under theme.Key, creating it when absent.
func (r *MongoThemeRepo) Upsert(ctx context.Context, theme *models.Theme) (*models.Theme, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	theme.UpdatedAt = time.Now().UTC()
	opts := options.FindOneAndReplace().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.Theme
	if err := r.coll.FindOneAndReplace(ctx, bson.M{"key": theme.Key}, theme, opts).Decode(&stored); err != nil {
		return nil, repository.Translate(err, fmt.Sprintf("failed to save theme %s", theme.Key))
	}
	return &stored, nil
}
