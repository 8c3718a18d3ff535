package catalog

import (
	"context"
	"errors"
	"os"
	"testing"

	memoryRepo "libraryhub/database/repository/memory"
	"libraryhub/models"
	"libraryhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	utils.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newService() (*DefaultCatalogService, *memoryRepo.BookRepo) {
	books := memoryRepo.NewBookRepo()
	return &DefaultCatalogService{Books: books, Reservations: memoryRepo.NewReservationRepo()}, books
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func member(id string) *models.Principal {
	return &models.Principal{ID: id, Role: models.RoleMember}
}

func TestCreateBookStartsFullyAvailable(t *testing.T) {
	s, _ := newService()
	book, err := s.CreateBook(context.Background(), models.CreateBookRequest{
		Title:       "<em>Dune</em>",
		Author:      "Frank Herbert",
		TotalCopies: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, 3, book.AvailableCopies)
	assert.NotEmpty(t, book.ID)

	_, err = s.CreateBook(context.Background(), models.CreateBookRequest{Title: "<b></b>", Author: "x"})
	var vErr *utils.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()
	s, _ := newService()
	book, err := s.CreateBook(ctx, models.CreateBookRequest{Title: "Dune", Author: "Frank Herbert", TotalCopies: 2})
	require.NoError(t, err)

	updated, err := s.UpdateBook(ctx, book.ID, models.UpdateBookRequest{Title: strPtr("Dune Messiah"), TotalCopies: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", updated.Title)
	assert.Equal(t, 4, updated.TotalCopies)
	assert.Equal(t, "Frank Herbert", updated.Author)

	_, err = s.UpdateBook(ctx, book.ID, models.UpdateBookRequest{TotalCopies: intPtr(1), AvailableCopies: intPtr(2)})
	var vErr *utils.ValidationError
	assert.True(t, errors.As(err, &vErr))

	_, err = s.UpdateBook(ctx, book.ID, models.UpdateBookRequest{Author: strPtr("  ")})
	assert.True(t, errors.As(err, &vErr))

	_, err = s.UpdateBook(ctx, "missing", models.UpdateBookRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()
	s, books := newService()
	book, err := s.CreateBook(ctx, models.CreateBookRequest{Title: "Dune", Author: "Frank Herbert", TotalCopies: 1})
	require.NoError(t, err)

	require.NoError(t, s.DeleteBook(ctx, book.ID))
	assert.Equal(t, 0, books.Len())
	assert.ErrorIs(t, s.DeleteBook(ctx, book.ID), utils.ErrNotFound)
}

func TestReserve(t *testing.T) {
	ctx := context.Background()
	s, books := newService()
	available, err := s.CreateBook(ctx, models.CreateBookRequest{Title: "Dune", Author: "Frank Herbert", TotalCopies: 2})
	require.NoError(t, err)
	out, err := s.CreateBook(ctx, models.CreateBookRequest{Title: "Emma", Author: "Jane Austen", TotalCopies: 0})
	require.NoError(t, err)

	res, err := s.Reserve(ctx, member("u1"), models.CreateReservationRequest{BookID: available.ID})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, res.Status)

	_, err = s.Reserve(ctx, member("u1"), models.CreateReservationRequest{BookID: available.ID})
	var cErr *utils.ConflictError
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, "You already have a pending reservation for this book", cErr.Reason)

	_, err = s.Reserve(ctx, member("u2"), models.CreateReservationRequest{BookID: available.ID})
	assert.NoError(t, err)

	// both copies are now held
	_, err = s.Reserve(ctx, member("u3"), models.CreateReservationRequest{BookID: available.ID})
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, "No copies of this book are currently available", cErr.Reason)
	stored, err := books.GetByID(ctx, available.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.AvailableCopies)

	_, err = s.Reserve(ctx, member("u1"), models.CreateReservationRequest{BookID: out.ID})
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, "No copies of this book are currently available", cErr.Reason)

	_, err = s.Reserve(ctx, member("u1"), models.CreateReservationRequest{BookID: "missing"})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()
	s, books := newService()
	book, err := s.CreateBook(ctx, models.CreateBookRequest{Title: "Dune", Author: "Frank Herbert", TotalCopies: 1})
	require.NoError(t, err)
	res, err := s.Reserve(ctx, member("u1"), models.CreateReservationRequest{BookID: book.ID})
	require.NoError(t, err)
	copies := func() int {
		b, err := books.GetByID(ctx, book.ID)
		require.NoError(t, err)
		return b.AvailableCopies
	}
	assert.Equal(t, 0, copies())

	_, err = s.CancelReservation(ctx, member("u2"), res.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	cancelled, err := s.CancelReservation(ctx, member("u1"), res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, cancelled.Status)
	assert.Equal(t, 1, copies())

	_, err = s.CancelReservation(ctx, member("u1"), res.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Equal(t, 1, copies())

	// a cancelled hold frees the slot for a new one
	_, err = s.Reserve(ctx, member("u1"), models.CreateReservationRequest{BookID: book.ID})
	assert.NoError(t, err)
	assert.Equal(t, 0, copies())

	pending, err := s.ListAllReservations(ctx, models.ReservationPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
	mine, err := s.ListReservations(ctx, member("u1"))
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
