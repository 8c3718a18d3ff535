package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"libraryhub/models"
	"libraryhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	hasLetter = regexp.MustCompile(`[A-Za-z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	if len(pw) < 8 {
		return utils.NewValidationError("password must be at least 8 characters long")
	}
	if !hasLetter.MatchString(pw) || !hasNumber.MatchString(pw) {
		return utils.NewValidationError("password must include at least one letter and one number")
	}
	return nil
}

// Register creates a GUEST account and signs it in.
func (s *DefaultAuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}
	firstName := utils.SanitizeText(req.FirstName)
	lastName := utils.SanitizeText(req.LastName)
	if firstName == "" && lastName == "" {
		return nil, utils.NewValidationError("a first or last name is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         models.RoleGuest,
		Profile: models.Profile{
			FirstName: firstName,
			LastName:  lastName,
		},
	}
	if err := s.Users.Create(ctx, user); err != nil {
		if errors.Is(err, utils.ErrConflict) {
			return nil, utils.NewConflictError("A user with this email already exists")
		}
		return nil, err
	}
	utils.GetLogger().Info("User registered", zap.String("userID", user.ID))

	return s.issue(user)
}
