package news

import (
	"context"
	"strings"

	"libraryhub/models"
	"libraryhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListPublished returns published entries. Members and staff also see MEMBERS entries.
func (s *DefaultNewsService) ListPublished(ctx context.Context, principal *models.Principal) ([]models.NewsEvent, error) {
	visible := []models.Visibility{models.VisibilityPublic}
	if principal.HasRole(models.RoleMember, models.RoleLibrarian, models.RoleAdmin) {
		visible = append(visible, models.VisibilityMembers)
	}
	return s.Repo.List(ctx, models.NewsFilter{PublishedOnly: true, Visibilities: visible})
}

// ListAll returns every entry as an admin listing row.
func (s *DefaultNewsService) ListAll(ctx context.Context) ([]models.NewsSummary, error) {
	items, err := s.Repo.List(ctx, models.NewsFilter{})
	if err != nil {
		return nil, err
	}
	rows := make([]models.NewsSummary, 0, len(items))
	for _, item := range items {
		rows = append(rows, item.Summary())
	}
	return rows, nil
}

func (s *DefaultNewsService) Create(ctx context.Context, actor *models.Principal, req models.CreateNewsRequest) (*models.NewsEvent, error) {
	if req.Type == models.NewsTypeEvent && req.EventDate == nil {
		return nil, utils.NewValidationError("eventDate is required for events")
	}
	visibility := req.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}

	item := &models.NewsEvent{
		ID:          uuid.NewString(),
		Title:       utils.SanitizeText(req.Title),
		Body:        utils.SanitizeRichText(req.Body),
		Type:        req.Type,
		IsPublished: req.IsPublished,
		Visibility:  visibility,
		EventDate:   req.EventDate,
		Location:    utils.SanitizeText(req.Location),
		CreatedBy:   actor.ID,
	}
	if item.Title == "" || item.Body == "" {
		return nil, utils.NewValidationError("title and body must not be empty")
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("News entry created", zap.String("id", item.ID), zap.String("type", string(item.Type)))
	return item, nil
}

// Update applies a partial update. A missing id yields utils.ErrNotFound from the store.
func (s *DefaultNewsService) Update(ctx context.Context, id string, req models.UpdateNewsRequest) (*models.NewsEvent, error) {
	if req.Title != nil {
		title := utils.SanitizeText(*req.Title)
		if title == "" {
			return nil, utils.NewValidationError("title must not be empty")
		}
		req.Title = &title
	}
	if req.Body != nil {
		body := utils.SanitizeRichText(*req.Body)
		if strings.TrimSpace(body) == "" {
			return nil, utils.NewValidationError("body must not be empty")
		}
		req.Body = &body
	}
	if req.Location != nil {
		location := utils.SanitizeText(*req.Location)
		req.Location = &location
	}
	return s.Repo.Update(ctx, id, req)
}

func (s *DefaultNewsService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
