package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseapi/internal/app/models/dto"
	"github.com/yigit/courseapi/internal/app/services"
	"github.com/yigit/courseapi/internal/middleware"
	"github.com/yigit/courseapi/internal/pkg/apperrors"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetCurrentUser returns the authenticated user
// @Summary Get the current user
// @Description Returns the user whose credentials authenticated the request
// @Tags users
// @Produce json
// @Security BasicAuth
// @Success 200 {object} dto.UserResponse "Current user"
// @Failure 400 {object} dto.MessageResponse "User not found"
// @Failure 401 {object} dto.MessageResponse "Access Denied"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /users [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	user, err := c.userService.GetCurrentUser(ctx.Request.Context(), current.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// CreateUser handles signup
// @Summary Create a user
// @Description Registers a new user. The password is stored as a bcrypt hash.
// @Tags users
// @Accept json
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 "User created, Location is /"
// @Failure 400 {object} dto.ValidationErrorResponse "Validation failed"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if _, err := c.userService.CreateUser(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", "/")
	ctx.Status(http.StatusCreated)
}
