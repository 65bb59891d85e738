package models

import (
	"database/sql"
	"time"
)

// QuizSubmission represents a quiz submission row. A unique index on
// (STUDENT_ID, QUIZ_ID) backs the one-submission-per-student-per-quiz
// invariant at the storage layer.
type QuizSubmission struct {
	ID          string       `db:"ID"` // ULID
	StudentID   string       `db:"STUDENT_ID"`
	QuizID      string       `db:"QUIZ_ID"`
	Answers     AnswerList   `db:"ANSWERS"`
	Score       float64      `db:"SCORE"` // 0..100, NUMBER(5,2)
	IsSubmitted bool         `db:"IS_SUBMITTED"`
	SubmittedAt sql.NullTime `db:"SUBMITTED_AT"`
	CreatedAt   time.Time    `db:"CREATED_AT"`
	UpdatedAt   time.Time    `db:"UPDATED_AT"`
	DeletedAt   sql.NullTime `db:"DELETED_AT"`
}
