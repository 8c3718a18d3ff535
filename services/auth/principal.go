package auth

import (
	"context"
	"errors"

	"libraryhub/models"
	"libraryhub/utils"

	"go.uber.org/zap"
)

// ResolvePrincipal validates the token, rejects revoked ones and loads the current role from the store.
// Revocation-store failures fail closed.
func (s *DefaultAuthService) ResolvePrincipal(ctx context.Context, token string) (*models.Principal, *utils.TokenClaims, error) {
	logger := utils.GetLogger()

	claims, err := utils.ParseToken(s.Secret, token)
	if err != nil {
		logger.Debug("Rejected token", zap.Error(err))
		return nil, nil, utils.ErrUnauthorized
	}

	revoked, err := s.Sessions.IsRevoked(ctx, claims.Id)
	if err != nil {
		logger.Error("Session store unavailable", zap.Error(err))
		return nil, nil, utils.ErrUnauthorized
	}
	if revoked {
		return nil, nil, utils.ErrUnauthorized
	}

	user, err := s.Users.GetByID(ctx, claims.Subject)
	if err != nil {
		if !errors.Is(err, utils.ErrNotFound) {
			logger.Error("Failed to load principal", zap.String("userID", claims.Subject), zap.Error(err))
		}
		return nil, nil, utils.ErrUnauthorized
	}
	if !user.Role.IsValid() {
		logger.Warn("User has unknown role", zap.String("userID", user.ID), zap.String("role", string(user.Role)))
		return nil, nil, utils.ErrUnauthorized
	}

	return &models.Principal{ID: user.ID, Role: user.Role, Email: user.Email}, claims, nil
}
