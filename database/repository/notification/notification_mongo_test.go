package notificationRepo

import (
	"context"
	"testing"

	"libraryhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoNotificationRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("mark all read reports modified count", func(mt *mtest.T) {
		repo := NewMongoNotificationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 3},
			bson.E{Key: "nModified", Value: 3},
		))

		n, err := repo.MarkAllRead(context.Background(), "u1")
		require.NoError(t, err)
		assert.EqualValues(t, 3, n)
	})

	mt.Run("mark read of someone else's notification is not found", func(mt *mtest.T) {
		repo := NewMongoNotificationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		assert.ErrorIs(t, repo.MarkRead(context.Background(), "u1", "n-of-u2"), utils.ErrNotFound)
	})

	mt.Run("mark read", func(mt *mtest.T) {
		repo := NewMongoNotificationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		assert.NoError(t, repo.MarkRead(context.Background(), "u1", "n1"))
	})
}
