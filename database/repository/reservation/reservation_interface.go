package reservationRepo

import (
	"context"

	"libraryhub/models"
)

// ReservationRepository defines methods for reservation data access.
type ReservationRepository interface {
	// Create inserts a reservation; a second pending hold on the same book yields utils.ErrConflict.
	Create(ctx context.Context, r *models.Reservation) error
	ListForUser(ctx context.Context, userID string) ([]models.Reservation, error)
	ListAll(ctx context.Context, status models.ReservationStatus) ([]models.Reservation, error)
	// Cancel cancels a pending reservation owned by userID.
	Cancel(ctx context.Context, userID, id string) (*models.Reservation, error)
}
