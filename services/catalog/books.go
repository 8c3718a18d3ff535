package catalog

import (
	"context"

	"libraryhub/models"
	"libraryhub/utils"

	"github.com/google/uuid"
)

// ListBooks returns a page of the catalog.
func (s *DefaultCatalogService) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, int64, error) {
	return s.Books.List(ctx, filter)
}

// GetBook returns one book.
func (s *DefaultCatalogService) GetBook(ctx context.Context, id string) (*models.Book, error) {
	return s.Books.GetByID(ctx, id)
}

// CreateBook adds a book; every copy starts out available.
func (s *DefaultCatalogService) CreateBook(ctx context.Context, req models.CreateBookRequest) (*models.Book, error) {
	book := &models.Book{
		ID:              uuid.NewString(),
		Title:           utils.SanitizeText(req.Title),
		Author:          utils.SanitizeText(req.Author),
		ISBN:            req.ISBN,
		Genre:           utils.SanitizeText(req.Genre),
		Description:     utils.SanitizeRichText(req.Description),
		CoverURL:        req.CoverURL,
		PublishedYear:   req.PublishedYear,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.TotalCopies,
	}
	if book.Title == "" || book.Author == "" {
		return nil, utils.NewValidationError("title and author are required")
	}
	if err := s.Books.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBook applies a partial update and returns the stored book.
func (s *DefaultCatalogService) UpdateBook(ctx context.Context, id string, req models.UpdateBookRequest) (*models.Book, error) {
	if req.Title != nil {
		v := utils.SanitizeText(*req.Title)
		if v == "" {
			return nil, utils.NewValidationError("title cannot be empty")
		}
		req.Title = &v
	}
	if req.Author != nil {
		v := utils.SanitizeText(*req.Author)
		if v == "" {
			return nil, utils.NewValidationError("author cannot be empty")
		}
		req.Author = &v
	}
	if req.Genre != nil {
		v := utils.SanitizeText(*req.Genre)
		req.Genre = &v
	}
	if req.Description != nil {
		v := utils.SanitizeRichText(*req.Description)
		req.Description = &v
	}
	if req.TotalCopies != nil && req.AvailableCopies != nil && *req.AvailableCopies > *req.TotalCopies {
		return nil, utils.NewValidationError("availableCopies cannot exceed totalCopies")
	}
	return s.Books.Update(ctx, id, req)
}

// DeleteBook removes a book.
func (s *DefaultCatalogService) DeleteBook(ctx context.Context, id string) error {
	return s.Books.Delete(ctx, id)
}
