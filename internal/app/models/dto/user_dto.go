package dto

import (
	"github.com/yigit/courseapi/internal/app/models"
	"github.com/yigit/courseapi/internal/pkg/validation"
)

// CreateUserRequest is the signup payload
type CreateUserRequest struct {
	FirstName    string `json:"firstName" validate:"required,notblank" example:"Joe"`
	LastName     string `json:"lastName" validate:"required,notblank" example:"Smith"`
	EmailAddress string `json:"emailAddress" validate:"required,email" example:"joe@smith.com"`
	Password     string `json:"password" validate:"required,notblank" example:"password"`
}

// Signup validation messages
const (
	MsgFirstNameRequired = "Please enter your first name"
	MsgLastNameRequired  = "Please enter your last name"
	MsgEmailRequired     = "Please enter your email address"
	MsgEmailInvalid      = "Please enter a valid email address (ex: hello@world.com)"
	MsgPasswordRequired  = "Please enter a password"
	MsgPasswordTooLong   = "Please enter a password of at most 72 bytes"
	MsgEmailInUse        = "Hey! This email address is already in use"
)

// CreateUserMessages maps signup rules to their messages
var CreateUserMessages = validation.Messages{
	"firstName":             MsgFirstNameRequired,
	"lastName":              MsgLastNameRequired,
	"emailAddress.required": MsgEmailRequired,
	"emailAddress.email":    MsgEmailInvalid,
	"password":              MsgPasswordRequired,
}

// UserResponse is the public view of a user: no password, no timestamps
type UserResponse struct {
	ID           int64  `json:"id" example:"1"`
	FirstName    string `json:"firstName" example:"Joe"`
	LastName     string `json:"lastName" example:"Smith"`
	EmailAddress string `json:"emailAddress" example:"joe@smith.com"`
}

// NewUserResponse projects a stored user onto its public view
func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}
