package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialErrorsWrapUnauthorized(t *testing.T) {
	for _, err := range []error{ErrAuthHeaderMissing, ErrInvalidCredentials} {
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
	assert.NotErrorIs(t, ErrUserNotFound, ErrUnauthorized)
	assert.ErrorIs(t, ErrUserNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrCourseNotFound, ErrResourceNotFound)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("Please provide a title", "Please provide a description")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "validation failed: Please provide a title; Please provide a description", err.Error())

	var ve *ValidationError
	wrapped := fmt.Errorf("creating user: %w", err)
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, []string{"Please provide a title", "Please provide a description"}, ve.Messages)
}

func TestCustomError(t *testing.T) {
	err := NewForbiddenError("not yours")
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, "not yours", err.Error())

	nf := NewResourceNotFoundError(nil, "")
	assert.ErrorIs(t, nf, ErrResourceNotFound)
	assert.Equal(t, "resource not found", nf.Error())

	br := NewBadRequestError("User not found")
	assert.ErrorIs(t, br, ErrBadRequest)
	assert.NotErrorIs(t, br, ErrResourceNotFound)
	assert.Equal(t, "User not found", br.Error())
}
