package notification

import (
	"context"

	"libraryhub/models"
)

// List returns the caller's newest notifications and their unread count.
func (s *DefaultNotificationService) List(ctx context.Context, principal *models.Principal) ([]models.Notification, int64, error) {
	items, err := s.repo.ListForUser(ctx, principal.ID, listLimit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, principal.ID)
	if err != nil {
		return nil, 0, err
	}
	return items, unread, nil
}

// MarkRead marks one of the caller's notifications. Someone else's id is reported as missing.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, principal *models.Principal, id string) error {
	return s.repo.MarkRead(ctx, principal.ID, id)
}

// MarkAllRead touches only notifications addressed to the caller.
func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, principal *models.Principal) (int64, error) {
	return s.repo.MarkAllRead(ctx, principal.ID)
}
