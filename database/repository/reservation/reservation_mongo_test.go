package reservationRepo

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

func TestMongoReservationRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "libraryhub." + collectionName

	// The filter carries owner and status, so another user's hold and a
	// non-pending hold both come back as no document.
	mt.Run("cancel without a matching pending hold is not found", func(mt *mtest.T) {
		repo := NewMongoReservationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.Cancel(context.Background(), "someone-else", "r1")
		assert.ErrorIs(t, err, utils.ErrNotFound)
	})

	mt.Run("cancel returns the cancelled hold", func(mt *mtest.T) {
		repo := NewMongoReservationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "id", Value: "r1"},
			{Key: "userId", Value: "u1"},
			{Key: "bookId", Value: "b1"},
			{Key: "status", Value: "CANCELLED"},
		}}))

		res, err := repo.Cancel(context.Background(), "u1", "r1")
		require.NoError(t, err)
		assert.Equal(t, models.ReservationCancelled, res.Status)
		assert.Equal(t, "b1", res.BookID)
	})

	mt.Run("second pending hold on a book is a conflict", func(mt *mtest.T) {
		repo := NewMongoReservationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: reservations index: userId_1_bookId_1",
		}))

		err := repo.Create(context.Background(), &models.Reservation{ID: "r2", UserID: "u1", BookID: "b1", Status: models.ReservationPending})
		assert.ErrorIs(t, err, utils.ErrConflict)
	})

	mt.Run("list for user", func(mt *mtest.T) {
		repo := NewMongoReservationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "id", Value: "r2"}, {Key: "userId", Value: "u1"}, {Key: "status", Value: "PENDING"}},
			bson.D{{Key: "id", Value: "r1"}, {Key: "userId", Value: "u1"}, {Key: "status", Value: "CANCELLED"}},
		))

		mine, err := repo.ListForUser(context.Background(), "u1")
		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, models.ReservationPending, mine[0].Status)
	})
}
