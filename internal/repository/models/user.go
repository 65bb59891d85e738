package models

import (
	"database/sql"
	"time"
)

// User represents a platform account row.
type User struct {
	ID         string         `db:"ID"` // ULID
	UserRoleID sql.NullString `db:"USER_ROLE_ID"`
	FirstName  string         `db:"FIRST_NAME"`
	MiddleName sql.NullString `db:"MIDDLE_NAME"`
	LastName   string         `db:"LAST_NAME"`
	Email      string         `db:"EMAIL"`    // unique
	Password   string         `db:"PASSWORD"` // bcrypt hash
	IsEnabled  bool           `db:"IS_ENABLED"`
	CreatedAt  time.Time      `db:"CREATED_AT"`
	UpdatedAt  time.Time      `db:"UPDATED_AT"`
	DeletedAt  sql.NullTime   `db:"DELETED_AT"`
}

// UserRole represents a role row.
type UserRole struct {
	ID        string       `db:"ID"` // ULID
	Name      string       `db:"NAME"`
	IsEnabled bool         `db:"IS_ENABLED"`
	CreatedAt time.Time    `db:"CREATED_AT"`
	UpdatedAt time.Time    `db:"UPDATED_AT"`
	DeletedAt sql.NullTime `db:"DELETED_AT"`
}
