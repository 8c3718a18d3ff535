package notification

import (
	"context"
	"fmt"

	notificationRepo "libraryhub/database/repository/notification"
	userRepo "libraryhub/database/repository/user"
	"libraryhub/models"
)

// listLimit caps the inbox returned to a user.
const listLimit int64 = 50

// NotificationService delivers in-app notifications and manages a user's inbox.
type NotificationService interface {
	List(ctx context.Context, principal *models.Principal) ([]models.Notification, int64, error)
	MarkRead(ctx context.Context, principal *models.Principal, id string) error
	MarkAllRead(ctx context.Context, principal *models.Principal) (int64, error)
	Send(ctx context.Context, req models.CreateNotificationRequest) (*models.Notification, error)
	// NotifyUser is Send for internal callers; failures are logged, never returned.
	NotifyUser(ctx context.Context, userID, kind, title, message string)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	repo  notificationRepo.NotificationRepository
	users userRepo.UserRepository
}

func NewDefaultNotificationService(repo notificationRepo.NotificationRepository, users userRepo.UserRepository) (*DefaultNotificationService, error) {
	if repo == nil {
		return nil, fmt.Errorf("notification service initialization error: repository is nil")
	}
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{repo: repo, users: users}, nil
}
