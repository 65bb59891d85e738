package dto

import "time"

// SubmittedAnswerDTO is one student answer keyed to a quiz question by index.
type SubmittedAnswerDTO struct {
	QuestionIndex int    `json:"question_index"`
	StudentAnswer string `json:"student_answer"`
}

// AnswerDTO is one graded answer in a submission response.
type AnswerDTO struct {
	QuestionIndex int    `json:"question_index"`
	StudentAnswer string `json:"student_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

// CreateSubmissionRequest represents the request body for creating a draft submission
type CreateSubmissionRequest struct {
	StudentID string               `json:"student_id"`
	QuizID    string               `json:"quiz_id"`
	Answers   []SubmittedAnswerDTO `json:"answers"`
}

// UpdateSubmissionRequest represents the request body for updating a draft submission.
// Nil fields are left unchanged.
type UpdateSubmissionRequest struct {
	Answers *[]SubmittedAnswerDTO `json:"answers,omitempty"`
}

// SubmitQuizRequest represents the request body for the graded submit operation
// @Description Final quiz submission to be graded
type SubmitQuizRequest struct {
	StudentID string               `json:"student_id"`
	QuizID    string               `json:"quiz_id"`
	Answers   []SubmittedAnswerDTO `json:"answers"`
}

// SubmissionResponse represents a quiz submission in the API response
// @Description Quiz submission with grading outcome
type SubmissionResponse struct {
	ID          string      `json:"id"`
	StudentID   string      `json:"student_id"`
	QuizID      string      `json:"quiz_id"`
	Answers     []AnswerDTO `json:"answers"`
	Score       float64     `json:"score"`
	IsSubmitted bool        `json:"is_submitted"`
	SubmittedAt *time.Time  `json:"submitted_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	DeletedAt   *time.Time  `json:"deleted_at,omitempty"`
}
