package models

import (
	"database/sql"
	"time"
)

// Quiz represents a quiz row. Questions are stored as a JSON document in a
// CLOB column.
type Quiz struct {
	ID           string       `db:"ID"` // ULID
	InstructorID string       `db:"INSTRUCTOR_ID"`
	Title        string       `db:"TITLE"`
	Description  string       `db:"DESCRIPTION"`
	Questions    QuestionList `db:"QUESTIONS"`
	CreatedAt    time.Time    `db:"CREATED_AT"`
	UpdatedAt    time.Time    `db:"UPDATED_AT"`
	DeletedAt    sql.NullTime `db:"DELETED_AT"`
}

// Assessment represents an assessment row; structurally identical to Quiz.
type Assessment struct {
	ID           string       `db:"ID"` // ULID
	InstructorID string       `db:"INSTRUCTOR_ID"`
	Title        string       `db:"TITLE"`
	Description  string       `db:"DESCRIPTION"`
	Questions    QuestionList `db:"QUESTIONS"`
	CreatedAt    time.Time    `db:"CREATED_AT"`
	UpdatedAt    time.Time    `db:"UPDATED_AT"`
	DeletedAt    sql.NullTime `db:"DELETED_AT"`
}
