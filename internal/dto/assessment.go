package dto

import "time"

// CreateAssessmentRequest represents the request body for creating an assessment
type CreateAssessmentRequest struct {
	InstructorID string        `json:"instructor_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Questions    []QuestionDTO `json:"questions"`
}

// UpdateAssessmentRequest represents the request body for updating an assessment.
// Nil fields are left unchanged.
type UpdateAssessmentRequest struct {
	InstructorID *string        `json:"instructor_id,omitempty"`
	Title        *string        `json:"title,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Questions    *[]QuestionDTO `json:"questions,omitempty"`
}

// AssessmentResponse represents an assessment in the API response
type AssessmentResponse struct {
	ID           string        `json:"id"`
	InstructorID string        `json:"instructor_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Questions    []QuestionDTO `json:"questions"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	DeletedAt    *time.Time    `json:"deleted_at,omitempty"`
}
