package bookRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"libraryhub/database/repository"
	"libraryhub/models"
	"libraryhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "books"

// MongoBookRepo implements BookRepository using MongoDB.
type MongoBookRepo struct {
	coll *mongo.Collection
}

// NewMongoBookRepo creates a new instance of BookRepository using MongoDB.
func NewMongoBookRepo(db *mongo.Database) *MongoBookRepo {
	return &MongoBookRepo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBookRepo) EnsureIndexes(ctx context.Context) error {
	return repository.CreateIndexes(ctx, r.coll,
		repository.UniqueIndex("id"),
		repository.Index("genre"),
		repository.Index("title"),
	)
}

// List returns a page of books and the total number of matches.
func (r *MongoBookRepo) List(ctx context.Context, filter models.BookFilter) ([]models.Book, int64, error) {
	ctx, cancel := repository.NewContext(ctx, repository.ListTimeout)
	defer cancel()

	query := bson.M{}
	if q := strings.TrimSpace(filter.Query); q != "" {
		query["$or"] = bson.A{
			bson.M{"title": repository.ContainsFold(q)},
			bson.M{"author": repository.ContainsFold(q)},
			bson.M{"isbn": q},
		}
	}
	if filter.Genre != "" {
		query["genre"] = filter.Genre
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}
	cursor, err := r.coll.Find(ctx, query, repository.Page(filter.Limit, filter.Offset, "createdAt"))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve books: %w", err)
	}
	books, err := repository.DecodeAll[models.Book](ctx, cursor)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

// GetByID retrieves a book by its unique ID.
func (r *MongoBookRepo) GetByID(ctx context.Context, id string) (*models.Book, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	var book models.Book
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&book); err != nil {
		return nil, repository.Translate(err, fmt.Sprintf("failed to fetch book with id %s", id))
	}
	return &book, nil
}

// Create inserts a new book document.
func (r *MongoBookRepo) Create(ctx context.Context, book *models.Book) error {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, book); err != nil {
		return repository.Translate(err, "failed to create book")
	}
	return nil
}

// Update applies a partial update in a single round trip and returns the stored document.
func (r *MongoBookRepo) Update(ctx context.Context, id string, req models.UpdateBookRequest) (*models.Book, error) {
	set := updateDocument(req)
	if len(set) == 0 {
		return nil, utils.NewValidationError("no updatable fields provided")
	}
	set["updatedAt"] = time.Now().UTC()

	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var book models.Book
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&book); err != nil {
		return nil, repository.Translate(err, fmt.Sprintf("failed to update book with id %s", id))
	}
	return &book, nil
}

// TakeCopy decrements availableCopies while at least one copy is free.
// A missing book or one with no free copy yields utils.ErrNotFound.
func (r *MongoBookRepo) TakeCopy(ctx context.Context, id string) (*models.Book, error) {
	filter := bson.M{"id": id, "availableCopies": bson.M{"$gt": 0}}
	return r.adjustCopies(ctx, filter, -1)
}

// ReturnCopy increments availableCopies, never past totalCopies.
func (r *MongoBookRepo) ReturnCopy(ctx context.Context, id string) (*models.Book, error) {
	filter := bson.M{"id": id, "$expr": bson.M{"$lt": bson.A{"$availableCopies", "$totalCopies"}}}
	return r.adjustCopies(ctx, filter, 1)
}

func (r *MongoBookRepo) adjustCopies(ctx context.Context, filter bson.M, delta int) (*models.Book, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"availableCopies": delta},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var book models.Book
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&book); err != nil {
		return nil, repository.Translate(err, fmt.Sprintf("failed to adjust copies of book %v", filter["id"]))
	}
	return &book, nil
}

// Delete removes a book document by its ID.
func (r *MongoBookRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete book with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("book with id %s: %w", id, utils.ErrNotFound)
	}
	return nil
}

func updateDocument(req models.UpdateBookRequest) bson.M {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Author != nil {
		set["author"] = *req.Author
	}
	if req.ISBN != nil {
		set["isbn"] = *req.ISBN
	}
	if req.Genre != nil {
		set["genre"] = *req.Genre
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.CoverURL != nil {
		set["coverUrl"] = *req.CoverURL
	}
	if req.PublishedYear != nil {
		set["publishedYear"] = *req.PublishedYear
	}
	if req.TotalCopies != nil {
		set["totalCopies"] = *req.TotalCopies
	}
	if req.AvailableCopies != nil {
		set["availableCopies"] = *req.AvailableCopies
	}
	return set
}
