package notificationRepo

import (
	"context"

	"libraryhub/models"
)

// NotificationRepository defines methods for notification data access.
// Every read and write other than Create is scoped to the owning user.
type NotificationRepository interface {
	ListForUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	Create(ctx context.Context, n *models.Notification) error
	MarkRead(ctx context.Context, userID, id string) error
	// MarkAllRead marks every unread notification of userID and returns how many changed.
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
