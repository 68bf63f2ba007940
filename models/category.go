package models

import "time"

// Category is a named, described record shown on the dashboard.
type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// CategoryInput is the body accepted when creating or updating a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"active,omitempty"`
}

// IsActive resolves the optional active flag; categories are active unless
// told otherwise.
func (in CategoryInput) IsActive() bool {
	if in.Active == nil {
		return true
	}
	return *in.Active
}
