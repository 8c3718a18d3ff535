package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"libraryhub/database/repository"
	"libraryhub/models"
	"libraryhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "notifications"

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new instance of NotificationRepository using MongoDB.
func NewMongoNotificationRepo(db *mongo.Database) *MongoNotificationRepo {
	return &MongoNotificationRepo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates indexes for fields frequently used in queries.
func (r *MongoNotificationRepo) EnsureIndexes(ctx context.Context) error {
	return repository.CreateIndexes(ctx, r.coll,
		repository.UniqueIndex("id"),
		repository.Index("userId", "read"),
	)
}

// ListForUser returns the newest notifications of one user.
func (r *MongoNotificationRepo) ListForUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	ctx, cancel := repository.NewContext(ctx, repository.ListTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, repository.Page(limit, 0, "createdAt"))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notifications for %s: %w", userID, err)
	}
	return repository.DecodeAll[models.Notification](ctx, cursor)
}

// CountUnread counts the unread notifications of one user.
func (r *MongoNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"userId": userID, "read": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications for %s: %w", userID, err)
	}
	return n, nil
}

// Create inserts a new notification document.
func (r *MongoNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	n.CreatedAt = time.Now().UTC()
	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return repository.Translate(err, "failed to create notification")
	}
	return nil
}

// MarkRead marks a single notification owned by userID as read.
func (r *MongoNotificationRepo) MarkRead(ctx context.Context, userID, id string) error {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"read": true, "readAt": time.Now().UTC()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "userId": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("notification %s: %w", id, utils.ErrNotFound)
	}
	return nil
}

// MarkAllRead marks all unread notifications owned by userID as read.
func (r *MongoNotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"read": true, "readAt": time.Now().UTC()}}
	result, err := r.coll.UpdateMany(ctx, bson.M{"userId": userID, "read": false}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read for %s: %w", userID, err)
	}
	return result.ModifiedCount, nil
}
