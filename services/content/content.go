package content

import (
	"context"

	"libraryhub/models"
	"libraryhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateContent publishes a new item. Items default to MEMBERS visibility.
func (s *DefaultContentService) CreateContent(ctx context.Context, actor *models.Principal, contentType models.ContentType, req models.CreateContentRequest) (*models.Content, error) {
	if !contentType.IsValid() {
		return nil, utils.NewValidationError("unknown content type")
	}
	visibility := req.Visibility
	if visibility == "" {
		visibility = models.VisibilityMembers
	}

	item := &models.Content{
		ID:           uuid.NewString(),
		Type:         contentType,
		Title:        utils.SanitizeText(req.Title),
		Author:       utils.SanitizeText(req.Author),
		Description:  utils.SanitizeRichText(req.Description),
		FileURL:      req.FileURL,
		ThumbnailURL: req.ThumbnailURL,
		Visibility:   visibility,
		CreatedBy:    actor.ID,
	}
	if item.Title == "" {
		return nil, utils.NewValidationError("title is required")
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetVisibility changes who can see an item.
func (s *DefaultContentService) SetVisibility(ctx context.Context, contentType models.ContentType, id string, visibility models.Visibility) error {
	if !contentType.IsValid() {
		return utils.NewValidationError("unknown content type")
	}
	if !visibility.IsValid() {
		return utils.NewValidationError("visibility must be one of PUBLIC, MEMBERS, HIDDEN")
	}
	if err := s.Repo.SetVisibility(ctx, contentType, id, visibility); err != nil {
		return err
	}
	utils.GetLogger().Info("Content visibility changed",
		zap.String("type", string(contentType)),
		zap.String("id", id),
		zap.String("visibility", string(visibility)),
	)
	return nil
}

// DeleteContent removes an item.
func (s *DefaultContentService) DeleteContent(ctx context.Context, contentType models.ContentType, id string) error {
	if !contentType.IsValid() {
		return utils.NewValidationError("unknown content type")
	}
	return s.Repo.Delete(ctx, contentType, id)
}
