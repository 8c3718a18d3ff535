package memoryRepo

import (
	"context"
	"time"

	"libraryhub/models"
	"libraryhub/utils"
)

// ReservationRepo implements reservationRepo.ReservationRepository.
type ReservationRepo struct {
	s store[models.Reservation]
}

func NewReservationRepo() *ReservationRepo {
	return &ReservationRepo{s: newStore[models.Reservation]()}
}

func (r *ReservationRepo) Create(_ context.Context, res *models.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.items {
		if existing.ID == res.ID {
			return utils.ErrConflict
		}
		if res.Status == models.ReservationPending && existing.Status == models.ReservationPending &&
			existing.UserID == res.UserID && existing.BookID == res.BookID {
			return utils.ErrConflict
		}
	}
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now
	r.s.put(res.ID, *res)
	return nil
}

func (r *ReservationRepo) ListForUser(_ context.Context, userID string) ([]models.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.newestFirst(func(res *models.Reservation) bool { return res.UserID == userID }), nil
}

func (r *ReservationRepo) ListAll(_ context.Context, status models.ReservationStatus) ([]models.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.newestFirst(func(res *models.Reservation) bool { return status == "" || res.Status == status }), nil
}

func (r *ReservationRepo) Cancel(_ context.Context, userID, id string) (*models.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.items[id]
	if !ok || res.UserID != userID || res.Status != models.ReservationPending {
		return nil, notFound("reservation", id)
	}
	res.Status = models.ReservationCancelled
	res.UpdatedAt = time.Now().UTC()
	cp := *res
	return &cp, nil
}
