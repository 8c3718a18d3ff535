package memoryRepo

import (
	"context"
	"fmt"
	"time"

	"libraryhub/models"
	"libraryhub/utils"
)

// ApplicationRepo implements applicationRepo.ApplicationRepository.
type ApplicationRepo struct {
	s store[models.MemberApplication]
}

func NewApplicationRepo() *ApplicationRepo {
	return &ApplicationRepo{s: newStore[models.MemberApplication]()}
}

func (r *ApplicationRepo) Create(_ context.Context, app *models.MemberApplication) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.items {
		if existing.ID == app.ID {
			return utils.ErrConflict
		}
		if app.Status == models.ApplicationPending && existing.Status == models.ApplicationPending && existing.UserID == app.UserID {
			return utils.ErrConflict
		}
	}
	app.CreatedAt = time.Now().UTC()
	r.s.put(app.ID, *app)
	return nil
}

func (r *ApplicationRepo) GetByID(_ context.Context, id string) (*models.MemberApplication, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	app, ok := r.s.items[id]
	if !ok {
		return nil, notFound("application", id)
	}
	cp := *app
	return &cp, nil
}

func (r *ApplicationRepo) List(_ context.Context, status models.ApplicationStatus) ([]models.MemberApplication, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	apps := r.s.newestFirst(func(a *models.MemberApplication) bool { return status == "" || a.Status == status })
	return reverse(apps), nil
}

func (r *ApplicationRepo) Review(_ context.Context, id string, status models.ApplicationStatus, reviewerID, note string) (*models.MemberApplication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	app, ok := r.s.items[id]
	if !ok || app.Status != models.ApplicationPending {
		return nil, fmt.Errorf("application %s: %w", id, utils.NewConflictError("Application has already been reviewed"))
	}
	now := time.Now().UTC()
	app.Status = status
	app.ReviewedBy = reviewerID
	app.ReviewNote = note
	app.ReviewedAt = &now
	cp := *app
	return &cp, nil
}
