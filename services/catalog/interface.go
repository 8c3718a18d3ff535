package catalog

import (
	"context"

	bookRepo "libraryhub/database/repository/book"
	reservationRepo "libraryhub/database/repository/reservation"
	"libraryhub/models"
)

// CatalogService covers books and the reservations placed on them.
type CatalogService interface {
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, int64, error)
	GetBook(ctx context.Context, id string) (*models.Book, error)
	CreateBook(ctx context.Context, req models.CreateBookRequest) (*models.Book, error)
	UpdateBook(ctx context.Context, id string, req models.UpdateBookRequest) (*models.Book, error)
	DeleteBook(ctx context.Context, id string) error

	Reserve(ctx context.Context, principal *models.Principal, req models.CreateReservationRequest) (*models.Reservation, error)
	ListReservations(ctx context.Context, principal *models.Principal) ([]models.Reservation, error)
	CancelReservation(ctx context.Context, principal *models.Principal, id string) (*models.Reservation, error)
	ListAllReservations(ctx context.Context, status models.ReservationStatus) ([]models.Reservation, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Books        bookRepo.BookRepository
	Reservations reservationRepo.ReservationRepository
}
