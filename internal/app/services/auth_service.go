package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/courseapi/internal/app/models"
	"github.com/yigit/courseapi/internal/app/repositories"
	"github.com/yigit/courseapi/internal/pkg/apperrors"
	"github.com/yigit/courseapi/internal/pkg/auth"
)

// AuthService verifies per-request credentials
type AuthService interface {
	Authenticate(ctx context.Context, emailAddress, password string) (*models.User, error)
}

type authServiceImpl struct {
	userRepo repositories.UserStore
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserStore, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate resolves the user named by emailAddress and checks password
// against the stored hash. Every failure wraps apperrors.ErrUnauthorized; an
// unknown email additionally matches apperrors.ErrUserNotFound and a wrong
// password apperrors.ErrInvalidCredentials.
func (s *authServiceImpl) Authenticate(ctx context.Context, emailAddress, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, emailAddress)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Warn().Str("emailAddress", emailAddress).Msg("User not found for credentials")
			return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, apperrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("error looking up user for authentication: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		s.logger.Warn().Str("emailAddress", emailAddress).Msg("Authentication failure")
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Str("emailAddress", emailAddress).Int64("userID", user.ID).Msg("Authentication successful")
	return user, nil
}
