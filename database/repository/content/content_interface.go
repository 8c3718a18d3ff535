package contentRepo

import (
	"context"

	"libraryhub/models"
)

// ContentRepository defines methods for content data access. Items are addressed by type and id.
type ContentRepository interface {
	List(ctx context.Context, filter models.ContentFilter) ([]models.Content, error)
	GetByID(ctx context.Context, contentType models.ContentType, id string) (*models.Content, error)
	Create(ctx context.Context, item *models.Content) error
	SetVisibility(ctx context.Context, contentType models.ContentType, id string, visibility models.Visibility) error
	Delete(ctx context.Context, contentType models.ContentType, id string) error
}
