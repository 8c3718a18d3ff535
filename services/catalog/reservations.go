package catalog

import (
	"context"
	"errors"

	"libraryhub/models"
	"libraryhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const duplicateHold = "You already have a pending reservation for this book"

// Reserve places a hold on an available book for the caller. A pending hold consumes one copy.
func (s *DefaultCatalogService) Reserve(ctx context.Context, principal *models.Principal, req models.CreateReservationRequest) (*models.Reservation, error) {
	book, err := s.Books.GetByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}
	held, err := s.hasPendingHold(ctx, principal.ID, book.ID)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, utils.NewConflictError(duplicateHold)
	}
	if _, err := s.Books.TakeCopy(ctx, book.ID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.NewConflictError("No copies of this book are currently available")
		}
		return nil, err
	}

	res := &models.Reservation{
		ID:     uuid.NewString(),
		UserID: principal.ID,
		BookID: book.ID,
		Status: models.ReservationPending,
		Note:   utils.SanitizeText(req.Note),
	}
	if err := s.Reservations.Create(ctx, res); err != nil {
		s.returnCopy(ctx, book.ID)
		if errors.Is(err, utils.ErrConflict) {
			return nil, utils.NewConflictError(duplicateHold)
		}
		return nil, err
	}
	return res, nil
}

// ListReservations returns the caller's reservations.
func (s *DefaultCatalogService) ListReservations(ctx context.Context, principal *models.Principal) ([]models.Reservation, error) {
	return s.Reservations.ListForUser(ctx, principal.ID)
}

// CancelReservation cancels one of the caller's pending reservations and frees its copy.
func (s *DefaultCatalogService) CancelReservation(ctx context.Context, principal *models.Principal, id string) (*models.Reservation, error) {
	res, err := s.Reservations.Cancel(ctx, principal.ID, id)
	if err != nil {
		return nil, err
	}
	s.returnCopy(ctx, res.BookID)
	return res, nil
}

func (s *DefaultCatalogService) hasPendingHold(ctx context.Context, userID, bookID string) (bool, error) {
	mine, err := s.Reservations.ListForUser(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, r := range mine {
		if r.BookID == bookID && r.Status == models.ReservationPending {
			return true, nil
		}
	}
	return false, nil
}

func (s *DefaultCatalogService) returnCopy(ctx context.Context, bookID string) {
	if _, err := s.Books.ReturnCopy(ctx, bookID); err != nil {
		utils.GetLogger().Warn("Failed to return reserved copy",
			zap.String("bookId", bookID),
			zap.Error(err),
		)
	}
}

// ListAllReservations is the staff view.
func (s *DefaultCatalogService) ListAllReservations(ctx context.Context, status models.ReservationStatus) ([]models.Reservation, error) {
	return s.Reservations.ListAll(ctx, status)
}
