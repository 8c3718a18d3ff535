package themeRepo

import (
	"context"

	"libraryhub/models"
)

// ThemeRepository stores keyed theme records.
type ThemeRepository interface {
	Get(ctx context.Context, key string) (*models.Theme, error)
	Upsert(ctx context.Context, theme *models.Theme) (*models.Theme, error)
}
