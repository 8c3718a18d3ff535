package content

import (
	"context"
	"fmt"

	"libraryhub/models"
	"libraryhub/utils"
)

// ListEbooks returns the non-hidden e-books. Staff manage hidden items through the admin surface.
func (s *DefaultContentService) ListEbooks(ctx context.Context, principal *models.Principal) ([]models.Content, error) {
	visible := make([]models.Visibility, 0, 2)
	for _, v := range VisibleTo(principal) {
		if v != models.VisibilityHidden {
			visible = append(visible, v)
		}
	}
	return s.Repo.List(ctx, models.ContentFilter{
		Type:         models.ContentEbook,
		Visibilities: visible,
	})
}

// GetEbook returns one e-book. Items the principal may not see are reported as missing.
func (s *DefaultContentService) GetEbook(ctx context.Context, principal *models.Principal, id string) (*models.Content, error) {
	item, err := s.Repo.GetByID(ctx, models.ContentEbook, id)
	if err != nil {
		return nil, err
	}
	if !canSee(principal, item.Visibility) {
		return nil, fmt.Errorf("ebook %s: %w", id, utils.ErrNotFound)
	}
	return item, nil
}
