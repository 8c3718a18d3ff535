package theme

import (
	"context"
	"errors"

	themeRepo "libraryhub/database/repository/theme"
	"libraryhub/models"
	"libraryhub/utils"
)

type ThemeService interface {
	GetTheme(ctx context.Context) (*models.Theme, error)
	SaveTheme(ctx context.Context, actor *models.Principal, req models.ThemeRequest) (*models.Theme, error)
}

// DefaultThemeService keeps the site-wide theme under models.GlobalThemeKey.
type DefaultThemeService struct {
	Repo themeRepo.ThemeRepository
}

// GetTheme returns the saved theme, or the defaults when none was saved yet.
func (s *DefaultThemeService) GetTheme(ctx context.Context) (*models.Theme, error) {
	t, err := s.Repo.Get(ctx, models.GlobalThemeKey)
	if errors.Is(err, utils.ErrNotFound) {
		def := models.DefaultTheme()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *DefaultThemeService) SaveTheme(ctx context.Context, actor *models.Principal, req models.ThemeRequest) (*models.Theme, error) {
	return s.Repo.Upsert(ctx, &models.Theme{
		Key:          models.GlobalThemeKey,
		PrimaryColor: req.PrimaryColor,
		AccentColor:  req.AccentColor,
		Mode:         req.Mode,
		LogoURL:      req.LogoURL,
		UpdatedBy:    actor.ID,
	})
}
