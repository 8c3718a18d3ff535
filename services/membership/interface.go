package membership

import (
	"context"

	applicationRepo "libraryhub/database/repository/application"
	userRepo "libraryhub/database/repository/user"
	"libraryhub/models"
	"libraryhub/services/notification"
)

// MembershipService takes guests through the membership application review.
type MembershipService interface {
	Apply(ctx context.Context, principal *models.Principal, req models.ApplicationRequest) (*models.MemberApplication, error)
	List(ctx context.Context, status models.ApplicationStatus) ([]models.MemberApplication, error)
	Approve(ctx context.Context, reviewer *models.Principal, id, note string) (*models.MemberApplication, error)
	Reject(ctx context.Context, reviewer *models.Principal, id, note string) (*models.MemberApplication, error)
}

// DefaultMembershipService is the production implementation. Notifier may be nil.
type DefaultMembershipService struct {
	Applications applicationRepo.ApplicationRepository
	Users        userRepo.UserRepository
	Notifier     notification.NotificationService
}
