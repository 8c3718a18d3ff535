package membership

import (
	"context"
	"errors"

	"libraryhub/models"
	"libraryhub/utils"

	"github.com/google/uuid"
)

// Apply files a membership application for a guest. Only one may be pending per user.
func (s *DefaultMembershipService) Apply(ctx context.Context, principal *models.Principal, req models.ApplicationRequest) (*models.MemberApplication, error) {
	if principal.Role != models.RoleGuest {
		return nil, utils.NewConflictError("You are already a member")
	}
	user, err := s.Users.GetByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	app := &models.MemberApplication{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		FirstName:  user.Profile.FirstName,
		LastName:   user.Profile.LastName,
		Email:      user.Email,
		Phone:      req.Phone,
		Motivation: utils.SanitizeText(req.Motivation),
		Status:     models.ApplicationPending,
	}
	if err := s.Applications.Create(ctx, app); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return nil, utils.NewConflictError("You already have a pending application")
		}
		return nil, err
	}
	return app, nil
}

// List returns applications in the given status, or all of them for an empty status.
func (s *DefaultMembershipService) List(ctx context.Context, status models.ApplicationStatus) ([]models.MemberApplication, error) {
	if status != "" && !status.IsValid() {
		return nil, utils.NewValidationError("status must be one of PENDING, APPROVED, REJECTED")
	}
	return s.Applications.List(ctx, status)
}
