package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseapi/internal/app/models"
	"github.com/yigit/courseapi/internal/app/models/dto"
	"github.com/yigit/courseapi/internal/app/services"
	"github.com/yigit/courseapi/internal/pkg/apperrors"
	"github.com/yigit/courseapi/internal/pkg/logger"
	"github.com/yigit/courseapi/internal/pkg/metrics"
)

// currentUserKey is the gin context key holding the authenticated *models.User
const currentUserKey = "currentUser"

// AuthMiddleware authenticates requests with HTTP basic auth
type AuthMiddleware struct {
	authService services.AuthService
	metrics     metrics.Recorder
	realm       string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService services.AuthService, recorder metrics.Recorder, realm string) *AuthMiddleware {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &AuthMiddleware{
		authService: authService,
		metrics:     recorder,
		realm:       realm,
	}
}

// BasicAuth requires a valid "Authorization: Basic" header. The name part is
// the user's email address. Every failure responds 401 Access Denied.
func (m *AuthMiddleware) BasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		emailAddress, password, ok := c.Request.BasicAuth()
		if !ok {
			m.deny(c, apperrors.ErrAuthHeaderMissing)
			return
		}

		user, err := m.authService.Authenticate(c.Request.Context(), emailAddress, password)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUnauthorized) {
				m.metrics.RecordAuthAttempt(metrics.AuthError)
				HandleAPIError(c, err)
				c.Abort()
				return
			}
			m.deny(c, err)
			return
		}

		m.metrics.RecordAuthAttempt(metrics.AuthSuccess)
		c.Set(currentUserKey, user)
		c.Next()
	}
}

func (m *AuthMiddleware) deny(c *gin.Context, reason error) {
	outcome := metrics.AuthBadSecret
	switch {
	case errors.Is(reason, apperrors.ErrAuthHeaderMissing):
		outcome = metrics.AuthHeaderMissing
		logger.Warn().Str("path", c.Request.URL.Path).Msg("Auth header not found")
	case errors.Is(reason, apperrors.ErrUserNotFound):
		outcome = metrics.AuthUserNotFound
	}
	m.metrics.RecordAuthAttempt(outcome)

	c.Header("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", m.realm))
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessageResponse(dto.ErrorCodeUnauthorized, dto.MsgAccessDenied))
}

// CurrentUser returns the user authenticated by BasicAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
