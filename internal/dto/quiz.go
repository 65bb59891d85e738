package dto

import "time"

// ChoiceDTO represents one selectable option on a multiple-choice question.
type ChoiceDTO struct {
	Choice string `json:"choice,omitempty"`
}

// QuestionDTO represents a single question within a quiz or assessment.
// @Description Question with its correct answer and optional choices
type QuestionDTO struct {
	Question      string      `json:"question"`
	Type          string      `json:"type"`
	CorrectAnswer string      `json:"correct_answer"`
	Choices       []ChoiceDTO `json:"choices,omitempty"`
}

// CreateQuizRequest represents the request body for creating a quiz
type CreateQuizRequest struct {
	InstructorID string        `json:"instructor_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Questions    []QuestionDTO `json:"questions"`
}

// UpdateQuizRequest represents the request body for updating a quiz.
// Nil fields are left unchanged.
type UpdateQuizRequest struct {
	InstructorID *string        `json:"instructor_id,omitempty"`
	Title        *string        `json:"title,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Questions    *[]QuestionDTO `json:"questions,omitempty"`
}

// QuizResponse represents a quiz in the API response
// @Description Quiz information
type QuizResponse struct {
	ID           string        `json:"id"`
	InstructorID string        `json:"instructor_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Questions    []QuestionDTO `json:"questions"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	DeletedAt    *time.Time    `json:"deleted_at,omitempty"`
}
