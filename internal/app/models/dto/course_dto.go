package dto

import (
	"github.com/yigit/courseapi/internal/app/models"
	"github.com/yigit/courseapi/internal/pkg/validation"
)

// CourseRequest is the payload for creating or updating a course.
// UserID names the owner and is taken from the payload as given.
type CourseRequest struct {
	Title           string  `json:"title" validate:"required,notblank" example:"Build a Basic Bookcase"`
	Description     string  `json:"description" validate:"required,notblank" example:"High-end furniture projects are great to dream about."`
	UserID          int64   `json:"userId" validate:"required" example:"1"`
	EstimatedTime   *string `json:"estimatedTime,omitempty" example:"12 hours"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty" example:"* 1/2 x 3/4 inch parting strip"`
}

// Course validation messages
const (
	MsgTitleRequired       = "Please provide a title"
	MsgDescriptionRequired = "Please provide a description"
	MsgUserIDRequired      = `Please provide a value for "User Id"`
	MsgOwnerUnknown        = `The value for "User Id" does not match an existing user`
)

// CourseMessages maps course rules to their messages
var CourseMessages = validation.Messages{
	"title":       MsgTitleRequired,
	"description": MsgDescriptionRequired,
	"userId":      MsgUserIDRequired,
}

// ToModel builds a course record from the request
func (r *CourseRequest) ToModel() *models.Course {
	return &models.Course{
		UserID:          r.UserID,
		Title:           r.Title,
		Description:     r.Description,
		EstimatedTime:   r.EstimatedTime,
		MaterialsNeeded: r.MaterialsNeeded,
	}
}

// CourseResponse is the public view of a course with its owner embedded
type CourseResponse struct {
	ID              int64         `json:"id" example:"1"`
	Title           string        `json:"title" example:"Build a Basic Bookcase"`
	Description     string        `json:"description"`
	EstimatedTime   *string       `json:"estimatedTime" example:"12 hours"`
	MaterialsNeeded *string       `json:"materialsNeeded"`
	UserID          int64         `json:"userId" example:"1"`
	User            *UserResponse `json:"user"`
}

// NewCourseResponse projects a stored course onto its public view
func NewCourseResponse(c *models.Course) *CourseResponse {
	if c == nil {
		return nil
	}
	return &CourseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
		User:            NewUserResponse(c.Owner),
	}
}

// NewCourseListResponse projects a list of courses, never returning nil
func NewCourseListResponse(courses []*models.Course) []*CourseResponse {
	out := make([]*CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
