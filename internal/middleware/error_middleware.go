package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseapi/internal/app/models/dto"
	"github.com/yigit/courseapi/internal/pkg/apperrors"
	"github.com/yigit/courseapi/internal/pkg/logger"
)

// HandleAPIError maps an error to its status code and response body.
// Validation failures list every message; everything else is a single message.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(validationErr.Messages))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.ErrorCodeValidationFailed, messageOf(err, "Bad request")))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewMessageResponse(dto.ErrorCodeUnauthorized, dto.MsgAccessDenied))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewMessageResponse(dto.ErrorCodeForbidden, messageOf(err, dto.MsgAccessDenied)))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse(dto.ErrorCodeResourceNotFound, messageOf(err, "Resource not found")))
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewMessageResponse(dto.ErrorCodeInternalServer, dto.MsgInternalError))
	}
}

// messageOf returns the user-facing message carried by a CustomError
func messageOf(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}

// Recovery turns a panic into a 500 response instead of dropping the connection
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewMessageResponse(dto.ErrorCodeInternalServer, dto.MsgInternalError))
	})
}

// NotFound answers requests that match no route
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewMessageResponse(dto.ErrorCodeResourceNotFound, dto.MsgRouteNotFound))
}
