package dto

import "time"

// CreateUserRoleRequest represents the request body for creating a role
type CreateUserRoleRequest struct {
	Name string `json:"name"`
}

// UpdateUserRoleRequest represents the request body for updating a role.
// Nil fields are left unchanged.
type UpdateUserRoleRequest struct {
	Name      *string `json:"name,omitempty"`
	IsEnabled *bool   `json:"is_enabled,omitempty"`
}

// UserRoleResponse represents a role in the API response
type UserRoleResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	IsEnabled bool       `json:"is_enabled"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
