package models

import "time"

// Course represents a course owned by a user.
type Course struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"userId" db:"user_id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	EstimatedTime   *string   `json:"estimatedTime,omitempty" db:"estimated_time"`     // Nullable
	MaterialsNeeded *string   `json:"materialsNeeded,omitempty" db:"materials_needed"` // Nullable
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Owner *User `json:"owner,omitempty"`
}
