package user

import (
	"context"
	"fmt"

	"libraryhub/models"
	"libraryhub/utils"

	"go.uber.org/zap"
)

// GetAllUsers retrieves all users for admin access, excluding credentials.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// PromoteUser grants the ADMIN role.
func (s *DefaultUserService) PromoteUser(ctx context.Context, actor *models.Principal, userID string) (*models.User, error) {
	return s.setRole(ctx, actor, userID, models.RoleAdmin)
}

// RevokeUser drops a user back to MEMBER. Admins cannot revoke themselves.
func (s *DefaultUserService) RevokeUser(ctx context.Context, actor *models.Principal, userID string) (*models.User, error) {
	if actor != nil && actor.ID == userID {
		return nil, utils.NewValidationError("you cannot revoke your own role")
	}
	return s.setRole(ctx, actor, userID, models.RoleMember)
}

func (s *DefaultUserService) setRole(ctx context.Context, actor *models.Principal, userID string, role models.Role) (*models.User, error) {
	updated, err := s.Repo.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	actorID := ""
	if actor != nil {
		actorID = actor.ID
	}
	utils.GetLogger().Info("User role changed",
		zap.String("userID", userID),
		zap.String("role", string(role)),
		zap.String("by", actorID),
	)
	return updated, nil
}
