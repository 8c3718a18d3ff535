package bookRepo

import (
	"context"

	"libraryhub/models"
)

// BookRepository defines methods for catalog data access.
type BookRepository interface {
	List(ctx context.Context, filter models.BookFilter) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	// Update applies the non-nil fields and returns the stored result; a missing id yields utils.ErrNotFound.
	Update(ctx context.Context, id string, req models.UpdateBookRequest) (*models.Book, error)
	Delete(ctx context.Context, id string) error
	// TakeCopy atomically consumes one available copy; none free (or no such book) yields utils.ErrNotFound.
	TakeCopy(ctx context.Context, id string) (*models.Book, error)
	// ReturnCopy atomically frees one copy, capped at TotalCopies.
	ReturnCopy(ctx context.Context, id string) (*models.Book, error)
}
