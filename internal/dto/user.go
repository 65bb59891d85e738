package dto

import "time"

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	UserRoleID string `json:"user_role_id,omitempty"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// UpdateUserRequest represents the request body for updating a user.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	UserRoleID *string `json:"user_role_id,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	IsEnabled  *bool   `json:"is_enabled,omitempty"`
}

// UserResponse represents a user in the API response.
// The password hash is never serialized.
type UserResponse struct {
	ID         string     `json:"id"`
	UserRoleID string     `json:"user_role_id,omitempty"`
	FirstName  string     `json:"first_name"`
	MiddleName string     `json:"middle_name,omitempty"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	IsEnabled  bool       `json:"is_enabled"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}
