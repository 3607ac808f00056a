package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseapi/internal/pkg/apperrors"
)

type signup struct {
	FirstName string `json:"firstName" validate:"required"`
	Email     string `json:"emailAddress" validate:"required,email"`
	Age       int    `json:"age" validate:"omitempty,min=18"`
}

var signupMessages = Messages{
	"firstName":             "Please enter your first name",
	"emailAddress.required": "Please enter your email address",
	"emailAddress.email":    "Please enter a valid email address",
}

func messagesOf(t *testing.T, err error) []string {
	t.Helper()
	var ve *apperrors.ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	return ve.Messages
}

func TestValidate_Valid(t *testing.T) {
	err := New().Validate(signup{FirstName: "Joe", Email: "joe@smith.com"}, signupMessages)
	assert.NoError(t, err)
}

func TestValidate_CollectsAllFieldsInOrder(t *testing.T) {
	err := New().Validate(signup{}, signupMessages)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, []string{"Please enter your first name", "Please enter your email address"}, messagesOf(t, err))
}

func TestValidate_OneMessagePerField(t *testing.T) {
	err := New().Validate(signup{FirstName: "Joe", Email: "not-an-email"}, signupMessages)
	assert.Equal(t, []string{"Please enter a valid email address"}, messagesOf(t, err))
}

func TestValidate_FallbackMessage(t *testing.T) {
	err := New().Validate(signup{FirstName: "Joe", Email: "joe@smith.com", Age: 3}, signupMessages)
	assert.Equal(t, []string{"age must be at least 18"}, messagesOf(t, err))
}

func TestValidate_PointerPayload(t *testing.T) {
	err := New().Validate(&signup{Email: "joe@smith.com"}, signupMessages)
	assert.Equal(t, []string{"Please enter your first name"}, messagesOf(t, err))
}

type named struct {
	Title string `json:"title" validate:"required,notblank"`
	Note  string `json:"note" validate:"omitempty,notblank"`
}

func TestValidate_NotBlank(t *testing.T) {
	v := New()
	messages := Messages{"title": "Please provide a title"}

	for _, blank := range []string{" ", "\t", "\n  \r"} {
		err := v.Validate(named{Title: blank}, messages)
		assert.Equal(t, []string{"Please provide a title"}, messagesOf(t, err), "%q", blank)
	}

	assert.NoError(t, v.Validate(named{Title: " Bookcase "}, messages))
	assert.Equal(t, []string{"note must not be blank"}, messagesOf(t, v.Validate(named{Title: "T", Note: "  "}, messages)))
}
