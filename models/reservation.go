package models

import "time"

// ReservationStatus tracks a hold on a book.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationFulfilled ReservationStatus = "FULFILLED"
)

// Reservation is a user's hold on a catalog book.
type Reservation struct {
	ID        string            `bson:"id" json:"id"`
	UserID    string            `bson:"userId" json:"userId"`
	BookID    string            `bson:"bookId" json:"bookId"`
	Status    ReservationStatus `bson:"status" json:"status"`
	Note      string            `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// CreateReservationRequest is the payload for placing a hold.
type CreateReservationRequest struct {
	BookID string `json:"bookId" binding:"required"`
	Note   string `json:"note" binding:"omitempty,max=500"`
}
