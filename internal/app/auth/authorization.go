package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/courseapi/internal/app/models"
	"github.com/yigit/courseapi/internal/app/models/dto"
	"github.com/yigit/courseapi/internal/app/repositories"
	"github.com/yigit/courseapi/internal/pkg/apperrors"
	"github.com/yigit/courseapi/internal/pkg/logger"
)

// AuthorizationService handles authorization operations
type AuthorizationService struct {
	courseRepo repositories.CourseStore
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(courseRepo repositories.CourseStore) *AuthorizationService {
	return &AuthorizationService{
		courseRepo: courseRepo,
	}
}

// AuthorizeCourseChange loads a course and checks that userID may modify it.
// The loaded course is returned so callers don't fetch it twice.
func (s *AuthorizationService) AuthorizeCourseChange(ctx context.Context, userID, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.NewResourceNotFoundError(apperrors.ErrCourseNotFound, dto.MsgCourseNotFound)
		}
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error getting course in AuthorizeCourseChange")
		return nil, fmt.Errorf("error getting course: %w", err)
	}

	if err := ValidateCourseOwnership(userID, course); err != nil {
		logger.Warn().
			Int64("userID", userID).
			Int64("courseID", courseID).
			Int64("ownerID", course.UserID).
			Msg("Rejected change to a course owned by another user")
		return nil, err
	}

	return course, nil
}

// ValidateCourseOwnership returns a forbidden error unless userID owns course
func ValidateCourseOwnership(userID int64, course *models.Course) error {
	if course == nil || course.UserID != userID {
		return apperrors.NewForbiddenError(dto.MsgOwnCoursesOnly)
	}
	return nil
}
