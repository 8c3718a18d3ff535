package themeRepo

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

func TestMongoThemeRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "libraryhub." + collectionName

	mt.Run("upsert returns the stored theme", func(mt *mtest.T) {
		repo := NewMongoThemeRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "lastErrorObject", Value: bson.D{{Key: "n", Value: 1}, {Key: "updatedExisting", Value: false}}},
			bson.E{Key: "value", Value: bson.D{
				{Key: "key", Value: models.GlobalThemeKey},
				{Key: "primaryColor", Value: "#000000"},
				{Key: "accentColor", Value: "#ffffff"},
				{Key: "mode", Value: "dark"},
				{Key: "updatedBy", Value: "admin"},
			}},
		))

		theme := &models.Theme{Key: models.GlobalThemeKey, PrimaryColor: "#000000", AccentColor: "#ffffff", Mode: "dark", UpdatedBy: "admin"}
		stored, err := repo.Upsert(context.Background(), theme)
		require.NoError(t, err)
		assert.Equal(t, "dark", stored.Mode)
		assert.Equal(t, "admin", stored.UpdatedBy)
		assert.False(t, theme.UpdatedAt.IsZero())
	})

	mt.Run("upsert failure is surfaced", func(mt *mtest.T) {
		repo := NewMongoThemeRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "invalid replacement document",
		}))

		_, err := repo.Upsert(context.Background(), &models.Theme{Key: models.GlobalThemeKey})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, utils.ErrNotFound)
	})

	mt.Run("get before any save is not found", func(mt *mtest.T) {
		repo := NewMongoThemeRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.Get(context.Background(), models.GlobalThemeKey)
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})
}
