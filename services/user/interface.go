package user

import (
	"context"

	userRepo "libraryhub/database/repository/user"
	"libraryhub/models"
)

type UserService interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdateRequest) (*models.User, error)

	// Admin
	GetAllUsers(ctx context.Context) ([]models.User, error)
	PromoteUser(ctx context.Context, actor *models.Principal, userID string) (*models.User, error)
	RevokeUser(ctx context.Context, actor *models.Principal, userID string) (*models.User, error)

	// Directory
	ListPublicMembers(ctx context.Context, filter models.MemberFilter) ([]models.PublicMember, int64, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
