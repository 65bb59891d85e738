package domain

import "time"

// SubmittedAnswer is a student's raw answer to one question, as received from
// the caller. Correctness is never trusted from input; it is computed by grading.
type SubmittedAnswer struct {
	QuestionIndex int    `json:"question_index"`
	StudentAnswer string `json:"student_answer"`
}

// Answer is a graded answer stored on a submission.
type Answer struct {
	QuestionIndex int    `json:"question_index"`
	StudentAnswer string `json:"student_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

// QuizSubmission is a student's attempt at a quiz. At most one submission with
// IsSubmitted=true exists per (StudentID, QuizID) pair; a record with
// IsSubmitted=false is a draft that the submit operation upgrades in place.
type QuizSubmission struct {
	ID          string
	StudentID   string
	QuizID      string
	Answers     []Answer
	Score       float64 // 0..100
	IsSubmitted bool
	SubmittedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
