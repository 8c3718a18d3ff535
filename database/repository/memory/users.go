package memoryRepo

import (
	"context"
	"strings"
	"time"

	"libraryhub/models"
	"libraryhub/utils"
)

// UserRepo implements userRepo.UserRepository.
type UserRepo struct {
	s store[models.User]
}

func NewUserRepo() *UserRepo {
	return &UserRepo{s: newStore[models.User]()}
}

func withoutHash(u models.User) *models.User {
	u.PasswordHash = ""
	return &u
}

func (r *UserRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user.Email = strings.ToLower(user.Email)
	for _, u := range r.s.items {
		if u.Email == user.Email || u.ID == user.ID {
			return utils.ErrConflict
		}
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.put(user.ID, *user)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.items[id]
	if !ok {
		return nil, notFound("user", id)
	}
	return withoutHash(*u), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	email = strings.ToLower(email)
	for _, u := range r.s.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, notFound("user", email)
}

func (r *UserRepo) GetAll(_ context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := r.s.newestFirst(nil)
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (r *UserRepo) UpdateRole(_ context.Context, id string, role models.Role) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.items[id]
	if !ok {
		return nil, notFound("user", id)
	}
	u.Role = role
	u.UpdatedAt = time.Now().UTC()
	return withoutHash(*u), nil
}

func (r *UserRepo) UpdateRoleFrom(_ context.Context, id string, from, to models.Role) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.items[id]
	if !ok || u.Role != from {
		return nil, notFound("user", id)
	}
	u.Role = to
	u.UpdatedAt = time.Now().UTC()
	return withoutHash(*u), nil
}

func (r *UserRepo) UpdateProfile(_ context.Context, id string, req models.ProfileUpdateRequest) (*models.User, error) {
	if req.FirstName == nil && req.LastName == nil && req.Bio == nil && req.AvatarURL == nil && req.IsPublic == nil {
		return nil, utils.NewValidationError("no updatable fields provided")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.items[id]
	if !ok {
		return nil, notFound("user", id)
	}
	if req.FirstName != nil {
		u.Profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.Profile.LastName = *req.LastName
	}
	if req.Bio != nil {
		u.Profile.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		u.Profile.AvatarURL = *req.AvatarURL
	}
	if req.IsPublic != nil {
		u.IsPublic = *req.IsPublic
	}
	u.UpdatedAt = time.Now().UTC()
	return withoutHash(*u), nil
}

func (r *UserRepo) ListPublicMembers(_ context.Context, filter models.MemberFilter) ([]models.User, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q := strings.TrimSpace(filter.Query)
	matches := r.s.newestFirst(func(u *models.User) bool {
		if !u.IsPublic || !(u.Role == models.RoleMember || u.Role.IsStaff()) || !u.Profile.HasName() {
			return false
		}
		return q == "" || containsFold(u.Profile.FirstName, q) || containsFold(u.Profile.LastName, q)
	})
	for i := range matches {
		matches[i].PasswordHash = ""
	}
	return page(matches, filter.Limit, filter.Offset), int64(len(matches)), nil
}

// Put stores a user as-is, bypassing Create's defaults. Test seeding only.
func (r *UserRepo) Put(user models.User) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.put(user.ID, user)
}
