package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"libraryhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// QueryTimeout bounds single-document operations.
	QueryTimeout = 5 * time.Second
	// ListTimeout bounds cursor-based operations.
	ListTimeout = 10 * time.Second

	DefaultPageSize int64 = 20
	MaxPageSize     int64 = 100
)

// NewContext derives a bounded context from the request context.
func NewContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

// Translate maps driver errors onto the application's error taxonomy.
func Translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", what, utils.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", what, utils.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// Page clamps limit/offset and returns find options sorted by sortField descending.
func Page(limit, offset int64, sortField string) *options.FindOptions {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: sortField, Value: -1}})
}

// ContainsFold builds a case-insensitive substring match for user input.
func ContainsFold(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

// DecodeAll drains a cursor into a slice, returning an empty slice rather than nil.
func DecodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	defer cursor.Close(ctx)

	items := make([]T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return items, nil
}

// UniqueIndex is a shorthand for a single-field unique index.
func UniqueIndex(field string) mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}, Options: options.Index().SetUnique(true)}
}

// Index is a shorthand for a compound ascending index.
func Index(fields ...string) mongo.IndexModel {
	keys := bson.D{}
	for _, f := range fields {
		keys = append(keys, bson.E{Key: f, Value: 1})
	}
	return mongo.IndexModel{Keys: keys}
}

// CreateIndexes creates indexes on coll, bounded by ListTimeout.
func CreateIndexes(ctx context.Context, coll *mongo.Collection, models ...mongo.IndexModel) error {
	ctx, cancel := NewContext(ctx, ListTimeout)
	defer cancel()

	if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
	}
	return nil
}
