package content

import (
	"context"

	contentRepo "libraryhub/database/repository/content"
	"libraryhub/models"
)

// ContentService manages e-books, gallery items and documents.
type ContentService interface {
	CreateContent(ctx context.Context, actor *models.Principal, contentType models.ContentType, req models.CreateContentRequest) (*models.Content, error)
	SetVisibility(ctx context.Context, contentType models.ContentType, id string, visibility models.Visibility) error
	DeleteContent(ctx context.Context, contentType models.ContentType, id string) error

	ListEbooks(ctx context.Context, principal *models.Principal) ([]models.Content, error)
	GetEbook(ctx context.Context, principal *models.Principal, id string) (*models.Content, error)
	ListGallery(ctx context.Context) ([]models.Content, error)
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	Repo contentRepo.ContentRepository
}

// VisibleTo lists the visibilities a principal may read. A nil principal is anonymous.
func VisibleTo(principal *models.Principal) []models.Visibility {
	switch {
	case principal == nil:
		return []models.Visibility{models.VisibilityPublic}
	case principal.Role.IsStaff():
		return []models.Visibility{models.VisibilityPublic, models.VisibilityMembers, models.VisibilityHidden}
	case principal.Role == models.RoleMember:
		return []models.Visibility{models.VisibilityPublic, models.VisibilityMembers}
	default:
		return []models.Visibility{models.VisibilityPublic}
	}
}

func canSee(principal *models.Principal, v models.Visibility) bool {
	for _, allowed := range VisibleTo(principal) {
		if allowed == v {
			return true
		}
	}
	return false
}
