package user

import (
	"context"

	"libraryhub/models"
	"libraryhub/utils"
)

// GetUserByID retrieves a user by ID, excluding credentials.
func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.Repo.GetByID(ctx, userID)
}

// UpdateProfile sanitises and applies the caller's own profile changes.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdateRequest) (*models.User, error) {
	if req.FirstName != nil {
		v := utils.SanitizeText(*req.FirstName)
		req.FirstName = &v
	}
	if req.LastName != nil {
		v := utils.SanitizeText(*req.LastName)
		req.LastName = &v
	}
	if req.Bio != nil {
		v := utils.SanitizeText(*req.Bio)
		req.Bio = &v
	}
	return s.Repo.UpdateProfile(ctx, userID, req)
}
