package memoryRepo

import (
	"context"
	"sync"
	"time"

	"libraryhub/models"
)

// ThemeRepo implements themeRepo.ThemeRepository.
type ThemeRepo struct {
	mu     sync.RWMutex
	themes map[string]models.Theme
}

func NewThemeRepo() *ThemeRepo {
	return &ThemeRepo{themes: make(map[string]models.Theme)}
}

func (r *ThemeRepo) Get(_ context.Context, key string) (*models.Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.themes[key]
	if !ok {
		return nil, notFound("theme", key)
	}
	return &t, nil
}

func (r *ThemeRepo) Upsert(_ context.Context, theme *models.Theme) (*models.Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	theme.UpdatedAt = time.Now().UTC()
	r.themes[theme.Key] = *theme
	stored := *theme
	return &stored, nil
}

// Len reports how many theme records exist.
func (r *ThemeRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.themes)
}
