package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"

	// Submission workflow errors
	ErrQuizNotFound       ErrorCode = "QUIZ_NOT_FOUND"
	ErrAlreadySubmitted   ErrorCode = "ALREADY_SUBMITTED"
	ErrInvalidAnswerIndex ErrorCode = "INVALID_ANSWER_INDEX"
	ErrInvalidQuizState   ErrorCode = "INVALID_QUIZ_STATE"

	// Account errors
	ErrEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	ErrRoleAlreadyExists  ErrorCode = "ROLE_ALREADY_EXISTS"
	ErrInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(ErrUnauthorized, message, nil)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(ErrQuizNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil)
}

func NewAlreadySubmittedError(studentID, quizID string) *DomainError {
	return NewError(ErrAlreadySubmitted, fmt.Sprintf("Quiz %s already submitted by student %s", quizID, studentID), nil)
}

func NewInvalidAnswerIndexError(index, questionCount int) *DomainError {
	return NewError(ErrInvalidAnswerIndex, fmt.Sprintf("Answer references question index %d outside quiz question range [0, %d)", index, questionCount), nil)
}

func NewInvalidQuizStateError(quizID string) *DomainError {
	return NewError(ErrInvalidQuizState, fmt.Sprintf("Quiz %s has no questions to grade against", quizID), nil)
}

func NewEmailAlreadyExistsError(email string) *DomainError {
	return NewError(ErrEmailAlreadyExists, fmt.Sprintf("User already exists with email: %s", email), nil)
}

func NewRoleAlreadyExistsError(name string) *DomainError {
	return NewError(ErrRoleAlreadyExists, fmt.Sprintf("Role already exists with name: %s", name), nil)
}

func NewInvalidCredentialsError() *DomainError {
	return NewError(ErrInvalidCredentials, "Invalid email or password", nil)
}
