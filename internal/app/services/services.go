package services

import (
	"github.com/rs/zerolog"
	appAuth "github.com/yigit/courseapi/internal/app/auth"
	"github.com/yigit/courseapi/internal/app/repositories"
	"github.com/yigit/courseapi/internal/pkg/validation"
)

// Services defined in this package:
// - AuthService: verifies basic-auth credentials against stored users
// - UserService: signup and the current user's profile
// - CourseService: course CRUD behind the ownership gate
type Services struct {
	Auth   AuthService
	User   UserService
	Course CourseService
}

// NewServices wires every service over the given stores
func NewServices(
	users repositories.UserStore,
	courses repositories.CourseStore,
	bcryptCost int,
	logger zerolog.Logger,
) *Services {
	v := validation.New()
	authz := appAuth.NewAuthorizationService(courses)

	return &Services{
		Auth:   NewAuthService(users, logger),
		User:   NewUserService(users, v, bcryptCost, logger),
		Course: NewCourseService(courses, authz, v, logger),
	}
}
