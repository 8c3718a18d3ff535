package memoryRepo

import (
	"context"
	"time"

	"libraryhub/models"
	"libraryhub/utils"
)

// NewsRepo implements newsRepo.NewsRepository.
type NewsRepo struct {
	s store[models.NewsEvent]
}

func NewNewsRepo() *NewsRepo {
	return &NewsRepo{s: newStore[models.NewsEvent]()}
}

func (r *NewsRepo) List(_ context.Context, filter models.NewsFilter) ([]models.NewsEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.newestFirst(func(n *models.NewsEvent) bool {
		if filter.PublishedOnly && !n.IsPublished {
			return false
		}
		return visibleIn(n.Visibility, filter.Visibilities)
	}), nil
}

func (r *NewsRepo) GetByID(_ context.Context, id string) (*models.NewsEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n, ok := r.s.items[id]
	if !ok {
		return nil, notFound("news", id)
	}
	cp := *n
	return &cp, nil
}

func (r *NewsRepo) Create(_ context.Context, item *models.NewsEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[item.ID]; ok {
		return utils.ErrConflict
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.s.put(item.ID, *item)
	return nil
}

func (r *NewsRepo) Update(_ context.Context, id string, req models.UpdateNewsRequest) (*models.NewsEvent, error) {
	if req == (models.UpdateNewsRequest{}) {
		return nil, utils.NewValidationError("no updatable fields provided")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, ok := r.s.items[id]
	if !ok {
		return nil, notFound("news", id)
	}
	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Body != nil {
		n.Body = *req.Body
	}
	if req.IsPublished != nil {
		n.IsPublished = *req.IsPublished
	}
	if req.Visibility != nil {
		n.Visibility = *req.Visibility
	}
	if req.EventDate != nil {
		d := req.EventDate.UTC()
		n.EventDate = &d
	}
	if req.Location != nil {
		n.Location = *req.Location
	}
	n.UpdatedAt = time.Now().UTC()
	cp := *n
	return &cp, nil
}

func (r *NewsRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.remove(id) {
		return notFound("news", id)
	}
	return nil
}
