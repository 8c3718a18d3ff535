package userRepo

import (
	"context"
	"fmt"
	"strings"

	"libraryhub/database/repository"
	"libraryhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var safeProjection = bson.M{"password_hash": 0}

// GetByID retrieves a user by its unique ID, without credentials.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	var user models.User
	opts := options.FindOne().SetProjection(safeProjection)
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&user); err != nil {
		return nil, repository.Translate(err, fmt.Sprintf("failed to fetch user with id %s", id))
	}
	return &user, nil
}

// GetByEmail retrieves the full user document, password hash included.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user); err != nil {
		return nil, repository.Translate(err, "failed to fetch user by email")
	}
	return &user, nil
}

// GetAll retrieves every user, newest first.
func (r *MongoUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := repository.NewContext(ctx, repository.ListTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(safeProjection).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return repository.DecodeAll[models.User](ctx, cursor)
}

// ListPublicMembers returns directory entries: public profiles of members and staff
// with at least one name part set.
func (r *MongoUserRepo) ListPublicMembers(ctx context.Context, filter models.MemberFilter) ([]models.User, int64, error) {
	ctx, cancel := repository.NewContext(ctx, repository.ListTimeout)
	defer cancel()

	query := publicMemberQuery(filter.Query)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	opts := repository.Page(filter.Limit, filter.Offset, "createdAt").SetProjection(safeProjection)
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve members: %w", err)
	}
	users, err := repository.DecodeAll[models.User](ctx, cursor)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func publicMemberQuery(q string) bson.M {
	clauses := bson.A{
		bson.M{"isPublic": true},
		bson.M{"role": bson.M{"$in": bson.A{models.RoleMember, models.RoleLibrarian, models.RoleAdmin}}},
		// $gt "" only matches non-empty strings.
		bson.M{"$or": bson.A{
			bson.M{"profile.firstName": bson.M{"$gt": ""}},
			bson.M{"profile.lastName": bson.M{"$gt": ""}},
		}},
	}
	if q = strings.TrimSpace(q); q != "" {
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"profile.firstName": repository.ContainsFold(q)},
			bson.M{"profile.lastName": repository.ContainsFold(q)},
		}})
	}
	return bson.M{"$and": clauses}
}
