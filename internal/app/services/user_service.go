package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/courseapi/internal/app/models"
	"github.com/yigit/courseapi/internal/app/models/dto"
	"github.com/yigit/courseapi/internal/app/repositories"
	"github.com/yigit/courseapi/internal/pkg/apperrors"
	"github.com/yigit/courseapi/internal/pkg/auth"
	"github.com/yigit/courseapi/internal/pkg/validation"
)

// UserService defines the interface for user operations
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetCurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo   repositories.UserStore
	validator  *validation.Validator
	bcryptCost int
	logger     zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.UserStore,
	validator *validation.Validator,
	bcryptCost int,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:   userRepo,
		validator:  validator,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// CreateUser validates the signup payload, hashes the password and stores the user
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	if err := s.validator.Validate(req, dto.CreateUserMessages); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password, s.bcryptCost)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, apperrors.NewValidationError(dto.MsgPasswordTooLong)
	}
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     hashedPassword,
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewValidationError(dto.MsgEmailInUse)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("emailAddress", user.EmailAddress).Msg("User created")
	return user, nil
}

// GetCurrentUser reloads the authenticated user
func (s *userServiceImpl) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewBadRequestError(dto.MsgUserNotFound)
		}
		return nil, fmt.Errorf("error getting current user: %w", err)
	}
	return user, nil
}
