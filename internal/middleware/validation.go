package middleware

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yigit/courseapi/internal/app/models/dto"
	"github.com/yigit/courseapi/internal/pkg/apperrors"
)

// BindJSON decodes the request body into obj. An empty body leaves obj at its
// zero value so the field rules report what is missing. A body that is not
// valid JSON is a validation failure. Rule checks are left to the services.
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindBodyWith(obj, binding.JSON); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperrors.NewValidationError(dto.MsgMalformedPayload)
	}
	return nil
}
