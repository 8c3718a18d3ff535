package newsRepo

import (
	"context"
	"errors"
	"testing"

	"libraryhub/models"
	"libraryhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoNewsRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "libraryhub." + collectionName
	title := "Summer reading club"

	mt.Run("update returns the stored document", func(mt *mtest.T) {
		repo := NewMongoNewsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "id", Value: "n1"},
			{Key: "title", Value: title},
			{Key: "type", Value: "EVENT"},
			{Key: "isPublished", Value: true},
			{Key: "visibility", Value: "PUBLIC"},
		}}))

		item, err := repo.Update(context.Background(), "n1", models.UpdateNewsRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, title, item.Title)
		assert.Equal(t, models.NewsTypeEvent, item.Type)
		assert.True(t, item.IsPublished)
	})

	mt.Run("update of a missing entry is not found", func(mt *mtest.T) {
		repo := NewMongoNewsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.Update(context.Background(), "missing", models.UpdateNewsRequest{Title: &title})
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	mt.Run("empty update is rejected before the round trip", func(mt *mtest.T) {
		repo := NewMongoNewsRepo(mt.DB)
		_, err := repo.Update(context.Background(), "n1", models.UpdateNewsRequest{})
		var vErr *utils.ValidationError
		assert.True(t, errors.As(err, &vErr))
	})

	mt.Run("delete of a missing entry is not found", func(mt *mtest.T) {
		repo := NewMongoNewsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), utils.ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoNewsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(t, repo.Delete(context.Background(), "n1"))
	})

	mt.Run("get of a missing entry is not found", func(mt *mtest.T) {
		repo := NewMongoNewsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	mt.Run("list of published entries", func(mt *mtest.T) {
		repo := NewMongoNewsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "id", Value: "n2"}, {Key: "isPublished", Value: true}, {Key: "visibility", Value: "MEMBERS"}},
		))

		items, err := repo.List(context.Background(), models.NewsFilter{
			PublishedOnly: true,
			Visibilities:  []models.Visibility{models.VisibilityPublic, models.VisibilityMembers},
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, models.VisibilityMembers, items[0].Visibility)
	})
}
