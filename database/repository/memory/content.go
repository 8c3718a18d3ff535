package memoryRepo

import (
	"context"
	"time"

	"libraryhub/models"
	"libraryhub/utils"
)

// ContentRepo implements contentRepo.ContentRepository.
type ContentRepo struct {
	s store[models.Content]
	// Err, when set, is returned by every call.
	Err error
}

func NewContentRepo() *ContentRepo {
	return &ContentRepo{s: newStore[models.Content]()}
}

func (r *ContentRepo) List(_ context.Context, filter models.ContentFilter) ([]models.Content, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.newestFirst(func(c *models.Content) bool {
		return c.Type == filter.Type && visibleIn(c.Visibility, filter.Visibilities)
	}), nil
}

func (r *ContentRepo) lookup(contentType models.ContentType, id string) (*models.Content, error) {
	c, ok := r.s.items[id]
	if !ok || c.Type != contentType {
		return nil, notFound(string(contentType), id)
	}
	return c, nil
}

func (r *ContentRepo) GetByID(_ context.Context, contentType models.ContentType, id string) (*models.Content, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, err := r.lookup(contentType, id)
	if err != nil {
		return nil, err
	}
	cp := *c
	return &cp, nil
}

func (r *ContentRepo) Create(_ context.Context, item *models.Content) error {
	if r.Err != nil {
		return r.Err
	}
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

func (r *ContentRepo) SetVisibility(_ context.Context, contentType models.ContentType, id string, visibility models.Visibility) error {
	if r.Err != nil {
		return r.Err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, err := r.lookup(contentType, id)
	if err != nil {
		return err
	}
	c.Visibility = visibility
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *ContentRepo) Delete(_ context.Context, contentType models.ContentType, id string) error {
	if r.Err != nil {
		return r.Err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, err := r.lookup(contentType, id); err != nil {
		return err
	}
	r.s.remove(id)
	return nil
}
