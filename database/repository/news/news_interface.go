package newsRepo

import (
	"context"

	"libraryhub/models"
)

// NewsRepository defines methods for news and event data access.
type NewsRepository interface {
	List(ctx context.Context, filter models.NewsFilter) ([]models.NewsEvent, error)
	GetByID(ctx context.Context, id string) (*models.NewsEvent, error)
	Create(ctx context.Context, item *models.NewsEvent) error
	Update(ctx context.Context, id string, req models.UpdateNewsRequest) (*models.NewsEvent, error)
	Delete(ctx context.Context, id string) error
}
