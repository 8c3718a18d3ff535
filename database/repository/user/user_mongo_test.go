package userRepo

import (
	"context"
	"testing"

	"libraryhub/models"
	"libraryhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoUserRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate email is a conflict", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: users index: email_1",
		}))

		u := &models.User{ID: "u1", Email: "Dup@Example.org", Role: models.RoleGuest}
		assert.ErrorIs(t, repo.Create(context.Background(), u), utils.ErrConflict)
		assert.Equal(t, "dup@example.org", u.Email)
	})

	mt.Run("role change on a missing user is not found", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.UpdateRole(context.Background(), "missing", models.RoleAdmin)
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	mt.Run("role change returns the updated user", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "id", Value: "u1"},
			{Key: "email", Value: "u1@example.org"},
			{Key: "role", Value: "ADMIN"},
		}}))

		u, err := repo.UpdateRole(context.Background(), "u1", models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, u.Role)
		assert.Empty(t, u.PasswordHash)
	})

	mt.Run("conditional role change on a user in another role is not found", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.UpdateRoleFrom(context.Background(), "u1", models.RoleGuest, models.RoleMember)
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	mt.Run("conditional role change", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "id", Value: "u1"},
			{Key: "role", Value: "MEMBER"},
		}}))

		u, err := repo.UpdateRoleFrom(context.Background(), "u1", models.RoleGuest, models.RoleMember)
		require.NoError(t, err)
		assert.Equal(t, models.RoleMember, u.Role)
	})

	mt.Run("empty profile update is rejected", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.DB)
		_, err := repo.UpdateProfile(context.Background(), "u1", models.ProfileUpdateRequest{})
		assert.Error(t, err)
	})
}
