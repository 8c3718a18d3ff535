package contentRepo

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

func TestMongoContentRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "libraryhub." + collectionName

	mt.Run("visibility change on a missing item is not found", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.SetVisibility(context.Background(), models.ContentEbook, "missing", models.VisibilityHidden)
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	mt.Run("visibility change", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		err := repo.SetVisibility(context.Background(), models.ContentEbook, "c1", models.VisibilityMembers)
		assert.NoError(t, err)
	})

	mt.Run("re-applying the same visibility still succeeds", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}))

		err := repo.SetVisibility(context.Background(), models.ContentGallery, "c1", models.VisibilityPublic)
		assert.NoError(t, err)
	})

	mt.Run("delete of a missing item is not found", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.ErrorIs(t, repo.Delete(context.Background(), models.ContentDocument, "missing"), utils.ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(t, repo.Delete(context.Background(), models.ContentDocument, "c1"))
	})

	mt.Run("get of a missing item is not found", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), models.ContentEbook, "missing")
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	mt.Run("list decodes every item", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "id", Value: "g2"}, {Key: "type", Value: "gallery"}, {Key: "visibility", Value: "PUBLIC"}},
			bson.D{{Key: "id", Value: "g1"}, {Key: "type", Value: "gallery"}, {Key: "visibility", Value: "PUBLIC"}},
		))

		items, err := repo.List(context.Background(), models.ContentFilter{
			Type:         models.ContentGallery,
			Visibilities: []models.Visibility{models.VisibilityPublic},
		})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "g2", items[0].ID)
		assert.Equal(t, models.VisibilityPublic, items[1].Visibility)
	})
}
