package userRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"libraryhub/database/repository"
	"libraryhub/models"
	"libraryhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	now := time.Now().UTC()
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return repository.Translate(err, "failed to create user")
	}
	return nil
}

// UpdateRole sets the role of the user with the given id.
func (r *MongoUserRepo) UpdateRole(ctx context.Context, id string, role models.Role) (*models.User, error) {
	update := bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now().UTC()}}
	return r.findOneAndUpdate(ctx, bson.M{"id": id}, update)
}

// UpdateRoleFrom moves the user from one role to another in a single conditional write.
func (r *MongoUserRepo) UpdateRoleFrom(ctx context.Context, id string, from, to models.Role) (*models.User, error) {
	update := bson.M{"$set": bson.M{"role": to, "updatedAt": time.Now().UTC()}}
	return r.findOneAndUpdate(ctx, bson.M{"id": id, "role": from}, update)
}

// UpdateProfile applies a partial profile update.
func (r *MongoUserRepo) UpdateProfile(ctx context.Context, id string, req models.ProfileUpdateRequest) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if req.FirstName != nil {
		set["profile.firstName"] = *req.FirstName
	}
	if req.LastName != nil {
		set["profile.lastName"] = *req.LastName
	}
	if req.Bio != nil {
		set["profile.bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		set["profile.avatarUrl"] = *req.AvatarURL
	}
	if req.IsPublic != nil {
		set["isPublic"] = *req.IsPublic
	}
	if len(set) == 1 {
		return nil, utils.NewValidationError("no updatable fields provided")
	}
	return r.findOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set})
}

func (r *MongoUserRepo) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.User, error) {
	ctx, cancel := repository.NewContext(ctx, repository.QueryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password_hash": 0})

	var user models.User
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, repository.Translate(err, fmt.Sprintf("failed to update user with id %v", filter["id"]))
	}
	return &user, nil
}
