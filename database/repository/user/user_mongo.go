package userRepo

import (
	"context"

	"libraryhub/database/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "users"

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates indexes for fields frequently used in queries.
func (r *MongoUserRepo) EnsureIndexes(ctx context.Context) error {
	return repository.CreateIndexes(ctx, r.coll,
		repository.UniqueIndex("id"),
		repository.UniqueIndex("email"),
		repository.Index("role", "isPublic"),
	)
}
