package memoryRepo

import (
	"context"
	"time"

	"libraryhub/models"
	"libraryhub/utils"
)

// NotificationRepo implements notificationRepo.NotificationRepository.
type NotificationRepo struct {
	s store[models.Notification]
}

func NewNotificationRepo() *NotificationRepo {
	return &NotificationRepo{s: newStore[models.Notification]()}
}

func (r *NotificationRepo) ListForUser(_ context.Context, userID string, limit int64) ([]models.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := r.s.newestFirst(func(n *models.Notification) bool { return n.UserID == userID })
	return page(items, limit, 0), nil
}

func (r *NotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, item := range r.s.items {
		if item.UserID == userID && !item.Read {
			n++
		}
	}
	return n, nil
}

func (r *NotificationRepo) Create(_ context.Context, n *models.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[n.ID]; ok {
		return utils.ErrConflict
	}
	n.CreatedAt = time.Now().UTC()
	r.s.put(n.ID, *n)
	return nil
}

func (r *NotificationRepo) MarkRead(_ context.Context, userID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, ok := r.s.items[id]
	if !ok || n.UserID != userID {
		return notFound("notification", id)
	}
	now := time.Now().UTC()
	n.Read = true
	n.ReadAt = &now
	return nil
}

func (r *NotificationRepo) MarkAllRead(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now().UTC()
	var modified int64
	for _, n := range r.s.items {
		if n.UserID == userID && !n.Read {
			n.Read = true
			n.ReadAt = &now
			modified++
		}
	}
	return modified, nil
}

// Get returns a stored notification regardless of owner.
func (r *NotificationRepo) Get(id string) (models.Notification, bool) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n, ok := r.s.items[id]
	if !ok {
		return models.Notification{}, false
	}
	return *n, true
}

// Len reports how many notifications are stored.
func (r *NotificationRepo) Len() int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.items)
}
