package domain

import "time"

// User represents a platform account (student or instructor).
type User struct {
	ID         string
	UserRoleID string
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
	Password   string // bcrypt hash, never exposed through DTOs
	IsEnabled  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// UserRole is a named role assignable to users.
type UserRole struct {
	ID        string
	Name      string
	IsEnabled bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
