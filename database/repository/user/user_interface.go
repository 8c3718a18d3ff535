package userRepo

import (
	"context"

	"libraryhub/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record. A duplicate email yields utils.ErrConflict.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email, including the password hash.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users without credentials.
	GetAll(ctx context.Context) ([]models.User, error)
	// UpdateRole sets a user's role and returns the updated record.
	UpdateRole(ctx context.Context, id string, role models.Role) (*models.User, error)
	// UpdateRoleFrom sets the role only while the user still holds from; otherwise utils.ErrNotFound.
	UpdateRoleFrom(ctx context.Context, id string, from, to models.Role) (*models.User, error)
	// UpdateProfile applies the non-nil profile fields and returns the updated record.
	UpdateProfile(ctx context.Context, id string, req models.ProfileUpdateRequest) (*models.User, error)
	// ListPublicMembers returns public, named members and the total matching count.
	ListPublicMembers(ctx context.Context, filter models.MemberFilter) ([]models.User, int64, error)
}
