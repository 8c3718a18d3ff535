package membership

import (
	"context"
	"errors"

	"libraryhub/models"
	"libraryhub/utils"

	"go.uber.org/zap"
)

// Approve accepts a pending application and grants a GUEST applicant the MEMBER role.
// Applicants whose role changed while the application was pending keep that role.
// The role is granted before the decision is stored, and taken back if storing fails.
func (s *DefaultMembershipService) Approve(ctx context.Context, reviewer *models.Principal, id, note string) (*models.MemberApplication, error) {
	pending, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}
	granted, err := s.grantMembership(ctx, pending.UserID)
	if err != nil {
		return nil, err
	}

	app, err := s.review(ctx, reviewer, id, models.ApplicationApproved, note)
	if err != nil {
		if granted {
			s.revokeMembership(ctx, pending.UserID)
		}
		return nil, err
	}
	s.notify(ctx, app.UserID, "Membership approved", "Welcome! Your membership application has been approved.")
	return app, nil
}

// Reject declines a pending application. The applicant keeps the GUEST role.
func (s *DefaultMembershipService) Reject(ctx context.Context, reviewer *models.Principal, id, note string) (*models.MemberApplication, error) {
	if _, err := s.pending(ctx, id); err != nil {
		return nil, err
	}
	app, err := s.review(ctx, reviewer, id, models.ApplicationRejected, note)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, app.UserID, "Membership application update", "Your membership application was not approved.")
	return app, nil
}

func (s *DefaultMembershipService) pending(ctx context.Context, id string) (*models.MemberApplication, error) {
	app, err := s.Applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationPending {
		return nil, utils.NewConflictError("Application has already been reviewed")
	}
	return app, nil
}

// grantMembership reports whether the user was moved from GUEST to MEMBER.
func (s *DefaultMembershipService) grantMembership(ctx context.Context, userID string) (bool, error) {
	_, err := s.Users.UpdateRoleFrom(ctx, userID, models.RoleGuest, models.RoleMember)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return false, err
	}
	// No longer a guest, or gone.
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return false, err
	}
	return false, nil
}

func (s *DefaultMembershipService) revokeMembership(ctx context.Context, userID string) {
	if _, err := s.Users.UpdateRoleFrom(ctx, userID, models.RoleMember, models.RoleGuest); err != nil {
		utils.GetLogger().Error("Failed to roll back membership grant",
			zap.String("userId", userID),
			zap.Error(err),
		)
	}
}

func (s *DefaultMembershipService) review(ctx context.Context, reviewer *models.Principal, id string, status models.ApplicationStatus, note string) (*models.MemberApplication, error) {
	app, err := s.Applications.Review(ctx, id, status, reviewer.ID, utils.SanitizeText(note))
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Membership application reviewed",
		zap.String("applicationId", id),
		zap.String("status", string(status)),
		zap.String("reviewer", reviewer.ID),
	)
	return app, nil
}

func (s *DefaultMembershipService) notify(ctx context.Context, userID, title, message string) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.NotifyUser(ctx, userID, "membership", title, message)
}
