package news

import (
	"context"

	newsRepo "libraryhub/database/repository/news"
	"libraryhub/models"
)

type NewsService interface {
	ListPublished(ctx context.Context, principal *models.Principal) ([]models.NewsEvent, error)
	ListAll(ctx context.Context) ([]models.NewsSummary, error)
	Create(ctx context.Context, actor *models.Principal, req models.CreateNewsRequest) (*models.NewsEvent, error)
	Update(ctx context.Context, id string, req models.UpdateNewsRequest) (*models.NewsEvent, error)
	Delete(ctx context.Context, id string) error
}

// DefaultNewsService is the production implementation.
type DefaultNewsService struct {
	Repo newsRepo.NewsRepository
}
