package content

import (
	"context"

	"libraryhub/models"
)

// ListGallery returns the public gallery, newest first.
func (s *DefaultContentService) ListGallery(ctx context.Context) ([]models.Content, error) {
	return s.Repo.List(ctx, models.ContentFilter{
		Type:         models.ContentGallery,
		Visibilities: []models.Visibility{models.VisibilityPublic},
	})
}
