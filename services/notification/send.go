package notification

import (
	"context"

	"libraryhub/models"
	"libraryhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultKind = "general"

// Send stores a notification for an existing user. An unknown recipient yields utils.ErrNotFound.
func (s *DefaultNotificationService) Send(ctx context.Context, req models.CreateNotificationRequest) (*models.Notification, error) {
	kind := req.Type
	if kind == "" {
		kind = defaultKind
	}
	n := &models.Notification{
		ID:      uuid.NewString(),
		UserID:  req.UserID,
		Type:    kind,
		Title:   utils.SanitizeText(req.Title),
		Message: utils.SanitizeRichText(req.Message),
		Link:    req.Link,
	}
	if n.Title == "" || n.Message == "" {
		return nil, utils.NewValidationError("title and message must not be empty")
	}
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *DefaultNotificationService) NotifyUser(ctx context.Context, userID, kind, title, message string) {
	_, err := s.Send(ctx, models.CreateNotificationRequest{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
	})
	if err != nil {
		utils.GetLogger().Warn("Failed to deliver notification",
			zap.String("userId", userID),
			zap.String("type", kind),
			zap.Error(err),
		)
	}
}
