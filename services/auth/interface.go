package auth

import (
	"context"
	"time"

	userRepo "libraryhub/database/repository/user"
	"libraryhub/models"
	"libraryhub/utils"
)

// AuthService is the identity provider: it issues, resolves and revokes session tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, claims *utils.TokenClaims) error
	// ResolvePrincipal maps a bearer token to the principal it was issued to.
	// Any failure is reported as utils.ErrUnauthorized.
	ResolvePrincipal(ctx context.Context, token string) (*models.Principal, *utils.TokenClaims, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Users    userRepo.UserRepository
	Sessions SessionStore
	Secret   []byte
	TokenTTL time.Duration
}

// NewAuthService wires the auth service.
func NewAuthService(users userRepo.UserRepository, sessions SessionStore, secret string, ttl time.Duration) *DefaultAuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &DefaultAuthService{
		Users:    users,
		Sessions: sessions,
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}
