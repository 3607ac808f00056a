package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/courseapi/internal/app/auth"
	"github.com/yigit/courseapi/internal/app/models"
	"github.com/yigit/courseapi/internal/app/models/dto"
	"github.com/yigit/courseapi/internal/app/repositories"
	"github.com/yigit/courseapi/internal/pkg/apperrors"
	"github.com/yigit/courseapi/internal/pkg/validation"
)

// CourseService defines the interface for course operations. Mutations take
// the authenticated user explicitly.
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, user *models.User, req *dto.CourseRequest) (int64, error)
	UpdateCourse(ctx context.Context, user *models.User, id int64, req *dto.CourseRequest) error
	DeleteCourse(ctx context.Context, user *models.User, id int64) error
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo   repositories.CourseStore
	authzService *appAuth.AuthorizationService
	validator    *validation.Validator
	logger       zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo repositories.CourseStore,
	authzService *appAuth.AuthorizationService,
	validator *validation.Validator,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		courseRepo:   courseRepo,
		authzService: authzService,
		validator:    validator,
		logger:       logger,
	}
}

// GetAllCourses returns every course with its owner
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID returns a course with its owner
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.NewResourceNotFoundError(apperrors.ErrCourseNotFound, dto.MsgCourseNotFound)
		}
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	return course, nil
}

// CreateCourse stores the course under the owner named in the payload.
// The owner is not forced to the authenticated user.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, user *models.User, req *dto.CourseRequest) (int64, error) {
	if err := s.validator.Validate(req, dto.CourseMessages); err != nil {
		return 0, err
	}

	if req.UserID != user.ID {
		s.logger.Warn().
			Int64("userID", user.ID).
			Int64("ownerID", req.UserID).
			Msg("Course created on behalf of another user")
	}

	id, err := s.courseRepo.CreateCourse(ctx, req.ToModel())
	if err != nil {
		if errors.Is(err, apperrors.ErrOwnerNotFound) {
			return 0, apperrors.NewValidationError(dto.MsgOwnerUnknown)
		}
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Int64("courseID", id).Int64("ownerID", req.UserID).Msg("Course created")
	return id, nil
}

// UpdateCourse validates the payload, checks ownership and rewrites the
// course. Optional fields left out of the payload keep their stored value.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, user *models.User, id int64, req *dto.CourseRequest) error {
	if err := s.validator.Validate(req, dto.CourseMessages); err != nil {
		return err
	}

	course, err := s.authzService.AuthorizeCourseChange(ctx, user.ID, id)
	if err != nil {
		return err
	}

	course.Title = req.Title
	course.Description = req.Description
	if req.EstimatedTime != nil {
		course.EstimatedTime = req.EstimatedTime
	}
	if req.MaterialsNeeded != nil {
		course.MaterialsNeeded = req.MaterialsNeeded
	}

	if err := s.courseRepo.UpdateCourse(ctx, course); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.NewResourceNotFoundError(apperrors.ErrCourseNotFound, dto.MsgCourseNotFound)
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	s.logger.Info().Int64("courseID", id).Int64("userID", user.ID).Msg("Course updated")
	return nil
}

// DeleteCourse checks ownership and deletes the course
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, user *models.User, id int64) error {
	if _, err := s.authzService.AuthorizeCourseChange(ctx, user.ID, id); err != nil {
		return err
	}

	if err := s.courseRepo.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.NewResourceNotFoundError(apperrors.ErrCourseNotFound, dto.MsgCourseNotFound)
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	s.logger.Info().Int64("courseID", id).Int64("userID", user.ID).Msg("Course deleted")
	return nil
}
