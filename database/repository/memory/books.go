package memoryRepo

import (
	"context"
	"strings"
	"time"

	"libraryhub/models"
	"libraryhub/utils"
)

// BookRepo implements bookRepo.BookRepository.
type BookRepo struct {
	s store[models.Book]
	// Err, when set, is returned by every call.
	Err error
}

func NewBookRepo() *BookRepo {
	return &BookRepo{s: newStore[models.Book]()}
}

func (r *BookRepo) List(_ context.Context, filter models.BookFilter) ([]models.Book, int64, error) {
	if r.Err != nil {
		return nil, 0, r.Err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q := strings.TrimSpace(filter.Query)
	matches := r.s.newestFirst(func(b *models.Book) bool {
		if filter.Genre != "" && b.Genre != filter.Genre {
			return false
		}
		return q == "" || containsFold(b.Title, q) || containsFold(b.Author, q) || b.ISBN == q
	})
	return page(matches, filter.Limit, filter.Offset), int64(len(matches)), nil
}

func (r *BookRepo) GetByID(_ context.Context, id string) (*models.Book, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.items[id]
	if !ok {
		return nil, notFound("book", id)
	}
	cp := *b
	return &cp, nil
}

func (r *BookRepo) Create(_ context.Context, book *models.Book) error {
	if r.Err != nil {
		return r.Err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[book.ID]; ok {
		return utils.ErrConflict
	}
	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now
	r.s.put(book.ID, *book)
	return nil
}

func (r *BookRepo) Update(_ context.Context, id string, req models.UpdateBookRequest) (*models.Book, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if req == (models.UpdateBookRequest{}) {
		return nil, utils.NewValidationError("no updatable fields provided")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.items[id]
	if !ok {
		return nil, notFound("book", id)
	}
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.ISBN != nil {
		b.ISBN = *req.ISBN
	}
	if req.Genre != nil {
		b.Genre = *req.Genre
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.CoverURL != nil {
		b.CoverURL = *req.CoverURL
	}
	if req.PublishedYear != nil {
		b.PublishedYear = *req.PublishedYear
	}
	if req.TotalCopies != nil {
		b.TotalCopies = *req.TotalCopies
	}
	if req.AvailableCopies != nil {
		b.AvailableCopies = *req.AvailableCopies
	}
	b.UpdatedAt = time.Now().UTC()
	cp := *b
	return &cp, nil
}

func (r *BookRepo) Delete(_ context.Context, id string) error {
	if r.Err != nil {
		return r.Err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.remove(id) {
		return notFound("book", id)
	}
	return nil
}

func (r *BookRepo) TakeCopy(_ context.Context, id string) (*models.Book, error) {
	return r.adjustCopies(id, -1)
}

func (r *BookRepo) ReturnCopy(_ context.Context, id string) (*models.Book, error) {
	return r.adjustCopies(id, 1)
}

func (r *BookRepo) adjustCopies(id string, delta int) (*models.Book, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.items[id]
	if !ok {
		return nil, notFound("book", id)
	}
	next := b.AvailableCopies + delta
	if next < 0 || next > b.TotalCopies {
		return nil, notFound("book", id)
	}
	b.AvailableCopies = next
	b.UpdatedAt = time.Now().UTC()
	cp := *b
	return &cp, nil
}

// Len reports how many books are stored.
func (r *BookRepo) Len() int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.items)
}
