package auth

import (
	"context"
	"errors"
	"fmt"

	"libraryhub/models"
	"libraryhub/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies credentials and issues a token. Unknown emails and wrong passwords are indistinguishable.
func (s *DefaultAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.PasswordHash == "" {
		return nil, utils.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	user.PasswordHash = ""
	return s.issue(user)
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *DefaultAuthService) Logout(ctx context.Context, claims *utils.TokenClaims) error {
	if claims == nil {
		return utils.ErrUnauthorized
	}
	if err := s.Sessions.Revoke(ctx, claims.Id, claims.ExpiresIn()); err != nil {
		return err
	}
	utils.GetLogger().Info("User signed out", zap.String("userID", claims.Subject))
	return nil
}

func (s *DefaultAuthService) issue(user *models.User) (*models.AuthResponse, error) {
	token, claims, err := utils.GenerateToken(s.Secret, user.ID, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
		User:      user,
	}, nil
}
