package applicationRepo

import (
	"context"

	"libraryhub/models"
)

// ApplicationRepository defines methods for membership application data access.
type ApplicationRepository interface {
	// Create inserts an application; a second pending application by the same user yields utils.ErrConflict.
	Create(ctx context.Context, app *models.MemberApplication) error
	GetByID(ctx context.Context, id string) (*models.MemberApplication, error)
	List(ctx context.Context, status models.ApplicationStatus) ([]models.MemberApplication, error)
	// Review moves a pending application to status; a non-pending one yields utils.ErrConflict.
	Review(ctx context.Context, id string, status models.ApplicationStatus, reviewerID, note string) (*models.MemberApplication, error)
}
